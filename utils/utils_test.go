package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripJSONFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripJSONFence(`{"a": 1}`))
	assert.Equal(t, `{"a": 1}`, StripJSONFence("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripJSONFence("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, StripJSONFence("  {\"a\": 1}  "))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abc", 10))
	assert.Equal(t, "abcde...", TruncateString("abcdefgh", 5))
}
