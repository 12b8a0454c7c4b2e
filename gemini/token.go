package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/digest"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ digest.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline with the model's local tokenizer, so
// counting never costs an API call and works without a key.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the tokenizer for model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, digest.Errorf(digest.EINTERNAL, "loading tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens in text as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
