// Package tokenizer counts and truncates text in embedding-model tokens.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/tiktoken-go/tokenizer"
)

// Counter measures text with tiktoken's cl100k_base encoding, the one used by
// OpenAI's text-embedding-3 and ada-002 models. It is safe for concurrent use.
type Counter struct {
	encoding tiktoken.Codec
}

// NewCounter creates a Counter backed by cl100k_base.
func NewCounter() (*Counter, error) {
	enc, err := tiktoken.Get(tiktoken.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return &Counter{encoding: enc}, nil
}

// CountTokens counts the number of tokens in the given text.
func (c *Counter) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	ids, _, err := c.encoding.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	return len(ids), nil
}

// Truncate returns the longest prefix of text that fits in maxTokens tokens,
// together with the token count of the original text.
func (c *Counter) Truncate(text string, maxTokens int) (string, int, error) {
	if maxTokens <= 0 {
		return "", 0, ErrInvalidLimit
	}
	if text == "" {
		return "", 0, nil
	}

	ids, _, err := c.encoding.Encode(text)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	if len(ids) <= maxTokens {
		return text, len(ids), nil
	}

	head, err := c.encoding.Decode(ids[:maxTokens])
	if err != nil {
		return "", len(ids), fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	return head, len(ids), nil
}
