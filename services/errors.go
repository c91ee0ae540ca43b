package services

import "errors"

// Sentinel errors returned by the service layer. All of them are local,
// recoverable conditions surfaced synchronously to the HTTP layer: 404 for
// ErrNotFound, 409 for ErrRoomUnavailable/ErrDuplicateRoom, 400 for the
// input errors. Nothing here is fatal to the process.
var (
	ErrNotFound        = errors.New("record not found")
	ErrRoomUnavailable = errors.New("room unavailable for the requested dates")
	ErrDuplicateRoom   = errors.New("room number already exists")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrWrongDoorCode   = errors.New("door code rejected")
)
