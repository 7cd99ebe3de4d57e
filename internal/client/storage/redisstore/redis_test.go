package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabPrefix(t *testing.T) {
	assert.Equal(t, "hmarket:tab:abc:", TabPrefix("hmarket:", "abc"))
	assert.Equal(t, "tab:abc:", TabPrefix("", "abc"))
}

func TestOpen_BadURL(t *testing.T) {
	_, err := Open(context.Background(), "not-a-url", "p:", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis URL")
}

func TestOpen_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Open(ctx, "redis://127.0.0.1:1/0", "p:", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
