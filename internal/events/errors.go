package events

import "errors"

// ErrBusClosed is returned when sending on a closed bus
var ErrBusClosed = errors.New("event bus is closed")
