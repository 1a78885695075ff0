package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

// ConcatenateWords takes the i-th character of the i-th word, skipping words
// too short to have one. Characters are runes, not bytes.
func ConcatenateWords(words []string) string {
	var b strings.Builder
	for i, word := range words {
		runes := []rune(word)
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

type WordService struct{}

func NewWordService() *WordService {
	return &WordService{}
}

func (s *WordService) Concatenate(ctx context.Context, req *model.WordConcatRequest) *model.WordConcatResponse {
	logger := zerolog.Ctx(ctx)
	for i, word := range req.Words {
		if i >= len([]rune(word)) {
			logger.Warn().Int("index", i).Str("word", word).Msg("word too short, skipped")
		}
	}

	result := ConcatenateWords(req.Words)
	logger.Info().Int("words", len(req.Words)).Str("result", result).Msg("concatenated words")

	return &model.WordConcatResponse{
		Result: result,
		Words:  req.Words,
	}
}
