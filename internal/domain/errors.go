package domain

import "errors"

var (
	ErrUnknownExpert = errors.New("expert role must be 'A' or 'B'")
	ErrMissingAPIKey = errors.New("OpenAI API key not found: set OPENAI_API_KEY or add it to the secrets file")
)

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrInputTooLong = errors.New("input too long")
)
