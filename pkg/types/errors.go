package types

import "errors"

// Domain errors for chunk validation
var (
	ErrEmptyText         = errors.New("chunk text cannot be empty")
	ErrMissingID         = errors.New("chunk ID is required")
	ErrInvalidChunkCount = errors.New("total chunks must be positive")
	ErrIndexOutOfRange   = errors.New("chunk index out of range")
)
