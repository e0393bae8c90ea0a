package api

import "errors"

// ErrMethodNotAllowed is reported for anything but GET.
var ErrMethodNotAllowed = errors.New("method not allowed")
