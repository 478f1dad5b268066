package core

import "errors"

// Configuration errors. They are only ever returned at load or resize time;
// Step itself cannot fail.
var (
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrInvalidLevel    = errors.New("invalid level")
)
