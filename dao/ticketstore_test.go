package dao

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"smartdesk/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ticket := &model.Ticket{
		ID:      "t-1",
		UserID:  "u-1",
		Summary: "User u-1 requested help: I can't log in",
		Status:  model.TicketOpen,
	}
	require.NoError(t, store.Create(ctx, ticket))

	got, err := store.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, ticket, got)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestMemoryStoreRejectsInvalidTicket(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Create(ctx, nil), ErrInvalidTicket)
	assert.ErrorIs(t, store.Create(ctx, &model.Ticket{}), ErrInvalidTicket)
}

// 并发写入只共享工单表本身，条目之间互不干扰
func TestMemoryStoreConcurrentCreate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("t-%d", i)
			assert.NoError(t, store.Create(ctx, &model.Ticket{ID: id, UserID: "u-1"}))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := store.Get(ctx, fmt.Sprintf("t-%d", i))
		assert.NoError(t, err)
	}
}
