package ports

import "context"

// ImageStore persists uploaded part photos under collision-free names.
type ImageStore interface {
	// Save writes the image bytes under a name derived from the current
	// timestamp, a unique token, and the sanitized original filename, and
	// returns the stored name.
	Save(ctx context.Context, originalName string, data []byte) (string, error)

	// Remove deletes a previously saved image. Used to undo the image write
	// when the record append fails; best effort.
	Remove(ctx context.Context, filename string) error
}
