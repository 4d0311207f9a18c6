package service

import "errors"

// ErrValidation marks rejected input. Handlers map it to 400.
var ErrValidation = errors.New("validation")
