package error

import (
	"errors"
)

var (
	ErrInvalidCapacity   = errors.New("top-k capacity must be positive")
	ErrInvalidSketchSize = errors.New("sketch width and depth must be positive")
	ErrInvalidSampleRate = errors.New("sample rate must be in (0, 1]")
)
