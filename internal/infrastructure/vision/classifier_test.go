//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

func TestClassify_NoModelLoaded(t *testing.T) {
	c := NewONNXClassifier()
	defer c.Close()

	if _, err := c.Classify(context.Background(), []byte("anything")); !errors.Is(err, domain.ErrNoModelLoaded) {
		t.Fatalf("expected ErrNoModelLoaded, got %v", err)
	}
	if c.Ready() {
		t.Fatalf("classifier must not report ready before a model is loaded")
	}
}

func TestDecodeImage_RejectsUndecodableBytes(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"not-image": []byte("this is not an image"),
	} {
		if _, err := decodeImage(data); !errors.Is(err, domain.ErrImageDecode) {
			t.Fatalf("%s: expected ErrImageDecode, got %v", name, err)
		}
	}
}

func TestReloadModel_RejectsMalformedArtifact(t *testing.T) {
	c := NewONNXClassifier()
	defer c.Close()

	if err := c.ReloadModel(context.Background(), []byte("malformed")); !errors.Is(err, domain.ErrModelLoad) {
		t.Fatalf("expected ErrModelLoad, got %v", err)
	}
	if c.Ready() {
		t.Fatalf("classifier must not report ready after a rejected artifact")
	}
}
