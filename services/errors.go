package services

import "errors"

var ErrValidation = errors.New("invalid input")
var ErrForbidden = errors.New("forbidden")
