package codegen

import "errors"

var (
	ErrTypeAlreadyExists = errors.New("type already exists")
)
