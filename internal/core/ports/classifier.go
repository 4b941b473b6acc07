package ports

import (
	"context"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// Classifier wraps the loaded image classification model.
//
// Classify must validate decodability of the bytes itself rather than trust
// the upload's extension. ReloadModel replaces the active model atomically on
// success and leaves the previous model in effect on failure; until the first
// successful load, Classify fails with domain.ErrNoModelLoaded.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (domain.Classification, error)
	ReloadModel(ctx context.Context, artifact []byte) error
	Ready() bool
}
