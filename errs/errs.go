// Package errs defines the sentinel errors returned by slotkit packages.
//
// Callers should match them with errors.Is, since most call sites wrap the
// sentinel with additional context.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the base error for caller-supplied arguments that fail validation.
var ErrInvalidArgument = errors.New("invalid argument")

// Argument errors. Each one also matches ErrInvalidArgument.
var (
	// ErrNegativeMin is returned when the next prime is requested for a negative number.
	ErrNegativeMin = fmt.Errorf("%w: cannot get the next prime from a negative number", ErrInvalidArgument)
	// ErrInvalidCapacity is returned when a container is asked for a negative capacity.
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must not be negative", ErrInvalidArgument)
	// ErrInvalidWidth is returned when a byte count is not on the union width ladder.
	ErrInvalidWidth = fmt.Errorf("%w: byte count is not a supported union width", ErrInvalidArgument)
)

// Snapshot errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid snapshot header size")
	ErrInvalidHeaderFlags = errors.New("invalid snapshot header flags")
	ErrInvalidMagic       = errors.New("invalid snapshot magic number")
	ErrEndianMismatch     = errors.New("snapshot was written with a different native byte order")
	ErrWidthMismatch      = errors.New("snapshot cell width does not match the requested width")
	ErrInvalidCompression = errors.New("invalid snapshot compression type")
	ErrInvalidPayload     = errors.New("invalid snapshot payload")
	ErrChecksumMismatch   = errors.New("snapshot payload checksum mismatch")
)
