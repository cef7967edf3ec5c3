package schema

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownTypology    = errors.New("unknown typology")
	ErrTypologyExists     = errors.New("typology already registered")
	ErrMissingType        = errors.New("missing type")
	ErrMissingCoordinates = errors.New("missing coordinates")
	ErrIncompatibleScore  = errors.New("incompatible comfort score")
	ErrTooFar             = errors.New("too far")
	ErrNoValidTypologies  = errors.New("no valid typologies")
	ErrDocumentNotFound   = errors.New("document not found")
)
