// Package gemini counts prompt tokens for extracted postings with the
// local Gemini tokenizer. Counting needs no API key or network calls once
// the tokenizer model is cached.
package gemini

import (
	"context"
	"sync"

	"github.com/fwojciec/jobscrape"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the model whose tokenizer is used when none is configured.
const DefaultModel = "gemini-2.0-flash"

var _ jobscrape.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the Gemini tokenizer.
// It is safe for concurrent use.
type TokenCounter struct {
	mu  sync.Mutex
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	tc.mu.Lock()
	result, err := tc.tok.CountTokens(contents, nil)
	tc.mu.Unlock()
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}

// CountPrompt counts the tokens of the job context block built for p.
func CountPrompt(ctx context.Context, counter jobscrape.TokenCounter, p *jobscrape.JobPosting, descriptionMarkdown string) (int, error) {
	return counter.CountTokens(ctx, jobscrape.FormatPosting(p, descriptionMarkdown))
}
