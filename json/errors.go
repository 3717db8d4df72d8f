package json

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrIncompleteExpression = errors.New("incomplete expression")
	ErrDepthExceeded        = errors.New("maximum nesting depth exceeded")
)
