package tokenizer

import "errors"

var (
	// ErrTokenizerFailed indicates tokenization failed
	ErrTokenizerFailed = errors.New("tokenization failed")

	// ErrInvalidLimit indicates a non-positive token limit
	ErrInvalidLimit = errors.New("token limit must be positive")
)
