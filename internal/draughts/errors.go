package draughts

import "errors"

var (
	ErrIllegalMove       = errors.New("illegal move")
	ErrMalformedNotation = errors.New("malformed notation")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrInvalidFEN        = errors.New("invalid FEN")
)
