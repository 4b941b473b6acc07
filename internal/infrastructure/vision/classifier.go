//go:build gocv
// +build gocv

// Package vision implements the classifier port on OpenCV's DNN module.
package vision

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// inputSide is the square resolution the model expects.
const inputSide = 224

// ONNXClassifier wraps a loaded ONNX binary classifier. The network stays in
// memory across calls; Classify holds a read lock so ReloadModel can swap the
// network under the write lock without racing an in-flight forward pass.
type ONNXClassifier struct {
	mu  sync.RWMutex
	net *gocv.Net
}

func NewONNXClassifier() *ONNXClassifier {
	return &ONNXClassifier{}
}

// Classify decodes the image, preprocesses it to the model's input contract
// (3-channel RGB, 224×224, pixel values scaled to [0,1]) and applies the
// threshold rule to the model's sigmoid output.
func (c *ONNXClassifier) Classify(_ context.Context, imageData []byte) (domain.Classification, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.net == nil {
		return domain.Classification{}, domain.ErrNoModelLoaded
	}

	mat, err := decodeImage(imageData)
	if err != nil {
		return domain.Classification{}, err
	}
	defer mat.Close()

	// IMDecode yields BGR; the model was trained on RGB, hence swapRB.
	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(inputSide, inputSide),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	c.net.SetInput(blob, "")
	prob := c.net.Forward("")
	defer prob.Close()

	if prob.Total() < 1 {
		return domain.Classification{}, fmt.Errorf("model produced no output: %w", domain.ErrModelOutput)
	}

	return domain.Decide(float64(prob.GetFloatAt(0, 0)))
}

// decodeImage turns the uploaded bytes into a 3-channel color Mat. On a
// decode error the zero Mat carries a nil inner pointer, so it must not be
// inspected or closed.
func decodeImage(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, domain.ErrImageDecode
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, domain.ErrImageDecode
	}
	return mat, nil
}

// ReloadModel parses the artifact and atomically replaces the active network.
// On a parse failure the previous network, if any, stays in effect.
func (c *ONNXClassifier) ReloadModel(_ context.Context, artifact []byte) error {
	net, err := gocv.ReadNetFromONNXBytes(artifact)
	if err != nil || net.Empty() {
		if err == nil {
			_ = net.Close()
			err = fmt.Errorf("empty network")
		}
		return fmt.Errorf("%w: %v", domain.ErrModelLoad, err)
	}

	c.mu.Lock()
	old := c.net
	c.net = &net
	c.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Ready reports whether a model has been loaded.
func (c *ONNXClassifier) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.net != nil
}

// Close releases the loaded network.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.net != nil {
		err := c.net.Close()
		c.net = nil
		return err
	}
	return nil
}
