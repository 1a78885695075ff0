package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

func TestConcatenateWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{name: "hello world", words: []string{"hello", "world"}, want: "ho"},
		{name: "three words", words: []string{"cat", "dog", "bird"}, want: "cor"},
		{name: "second word index one", words: []string{"hi", "world"}, want: "ho"},
		{name: "short word is skipped", words: []string{"a", "b"}, want: "a"},
		{name: "diagonal", words: []string{"a", "bc", "def"}, want: "acf"},
		{name: "skips in the middle", words: []string{"abc", "d", "efg"}, want: "ag"},
		{name: "empty word", words: []string{"", "xy"}, want: "y"},
		{name: "multibyte characters", words: []string{"ñu", "café"}, want: "ña"},
		{name: "empty list", words: []string{}, want: ""},
		{name: "nil list", words: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConcatenateWords(tt.words))
		})
	}
}

func TestWordService_Concatenate(t *testing.T) {
	words := []string{"cat", "dog", "bird"}

	got := NewWordService().Concatenate(context.Background(), &model.WordConcatRequest{Words: words})

	assert.Equal(t, &model.WordConcatResponse{Result: "cor", Words: words}, got)
}

func TestWordService_Concatenate_WarnsOnSkippedWords(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	got := NewWordService().Concatenate(ctx, &model.WordConcatRequest{Words: []string{"a", "b"}})

	assert.Equal(t, "a", got.Result)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"word":"b"`)
	assert.Contains(t, buf.String(), "word too short, skipped")
}
