package repository

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrConcurrentUpdate = errors.New("concurrent update")
)
