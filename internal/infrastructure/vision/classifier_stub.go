//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// ONNXClassifier is the stub twin used when the binary is built without the
// gocv tag. Classification is unavailable; every call reports the missing
// model so the workflow surfaces its "no model loaded" state.
type ONNXClassifier struct{}

func NewONNXClassifier() *ONNXClassifier {
	return &ONNXClassifier{}
}

func (c *ONNXClassifier) Classify(_ context.Context, _ []byte) (domain.Classification, error) {
	return domain.Classification{}, domain.ErrNoModelLoaded
}

func (c *ONNXClassifier) ReloadModel(_ context.Context, _ []byte) error {
	return domain.ErrModelLoad
}

func (c *ONNXClassifier) Ready() bool { return false }

func (c *ONNXClassifier) Close() error { return nil }
