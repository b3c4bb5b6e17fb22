package badge

import "errors"

var (
	// ErrTemplateNotFound means the template document is missing or unusable.
	ErrTemplateNotFound = errors.New("badge template not found")
	// ErrDecode means the photo payload is not a decodable raster image.
	ErrDecode = errors.New("photo could not be decoded")
	// ErrCapacity means the public URL does not fit the configured scan code version.
	ErrCapacity = errors.New("scan code capacity exceeded")
	// ErrMerge means the overlay could not be merged onto the template.
	ErrMerge = errors.New("overlay merge failed")
	// ErrInvalidInput means the render request itself is unusable.
	ErrInvalidInput = errors.New("invalid badge input")
)
