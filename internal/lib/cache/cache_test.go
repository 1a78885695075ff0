package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

func TestKey(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "Hello", want: "dictionary:entry:hello"},
		{word: "  HELLO  ", want: "dictionary:entry:hello"},
		{word: "hello", want: "dictionary:entry:hello"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.word))
		})
	}
}

func TestDefinitionCache_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewDefinitionCache(client, time.Minute)
	ctx := context.Background()

	entry, err := c.Get(ctx, "hello")
	assert.Error(t, err)
	assert.Nil(t, entry)

	err = c.Set(ctx, &model.DictionaryEntry{Word: "hello", Definition: "greeting"})
	assert.Error(t, err)
}
