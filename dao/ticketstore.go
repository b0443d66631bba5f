package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"smartdesk/model"

	"github.com/go-redis/redis/v8"
)

// 定义错误类型
var (
	ErrInvalidTicket  = errors.New("invalid ticket")
	ErrTicketNotFound = errors.New("ticket not found")
)

// TicketStore 工单存储：只追加、按 id 读取，不做修改和删除
type TicketStore interface {
	Create(ctx context.Context, ticket *model.Ticket) error
	Get(ctx context.Context, ticketID string) (*model.Ticket, error)
	Close() error
}

func validateTicket(ticket *model.Ticket) error {
	if ticket == nil {
		return fmt.Errorf("%w: ticket is nil", ErrInvalidTicket)
	}
	if ticket.ID == "" {
		return fmt.Errorf("%w: ticket.ID is empty", ErrInvalidTicket)
	}
	return nil
}

// MemoryStore 进程内工单存储，非持久化的占位实现
// 写入需要加锁，条目之间没有其他共享状态
type MemoryStore struct {
	mu      sync.RWMutex
	tickets map[string]*model.Ticket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tickets: make(map[string]*model.Ticket),
	}
}

func (s *MemoryStore) Create(ctx context.Context, ticket *model.Ticket) error {
	if err := validateTicket(ticket); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket.ID] = ticket
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, ticketID string) (*model.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, ticketID)
	}
	return ticket, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// RedisStore Redis 工单存储，配置了 redis 地址时启用
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisStore{
		client:    client,
		keyPrefix: "smartdesk:ticket:",
		ttl:       ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, ticket *model.Ticket) error {
	if err := validateTicket(ticket); err != nil {
		return err
	}

	key := s.keyPrefix + ticket.ID
	data, err := json.Marshal(ticket)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, ticketID string) (*model.Ticket, error) {
	key := s.keyPrefix + ticketID
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, ticketID)
	}
	if err != nil {
		return nil, err
	}

	var ticket model.Ticket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
