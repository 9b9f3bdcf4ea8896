package apperr

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicatePage    = errors.New("duplicate page name")
	ErrDuplicateBlockID = errors.New("duplicate block id")
	ErrMissingBlockID   = errors.New("block id is required")
	ErrNilBlock         = errors.New("nil block")
	ErrUnknownKind      = errors.New("unknown block kind")
	ErrInvalidListStyle = errors.New("invalid list style")
)
