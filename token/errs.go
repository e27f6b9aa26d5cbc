package token

import "errors"

var (
	ErrUnterminated = errors.New("unterminated")
	ErrNotQuoted    = errors.New("not quoted")
)
