package sprite

import "errors"

// Session protocol errors. These are returned immediately, before any
// engine state changes, so a misbehaving caller observes the batch
// exactly as it was.
var (
	// ErrAlreadyOpen is returned by Begin when a session is already open.
	ErrAlreadyOpen = errors.New("sprite: Begin called while a session is already open")

	// ErrNotOpen is returned by Draw and End when no session is open.
	ErrNotOpen = errors.New("sprite: no session open; call Begin first")

	// ErrNilDevice is returned by NewBatch when no device is supplied.
	ErrNilDevice = errors.New("sprite: nil device")

	// ErrNilSprite is returned when submitting a nil sprite.
	ErrNilSprite = errors.New("sprite: nil sprite")

	// ErrNilTexture is returned when submitting a sprite without a texture.
	ErrNilTexture = errors.New("sprite: sprite has no texture")

	// ErrNoEffect is returned by Begin when no effect is given and the
	// device provides no default.
	ErrNoEffect = errors.New("sprite: no effect; device provided no default")
)
