package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
)

// csvHeader matches the persisted schema field order.
var csvHeader = []string{
	"id", "operator", "mold", "cavity", "defect", "shift", "solution",
	"equipment_type", "result", "confidence", "timestamp", "image_filename",
}

// InspectionService orchestrates the classification-and-logging workflow:
// validate → classify → persist image → append record.
type InspectionService struct {
	repo       ports.InspectionRepository
	classifier ports.Classifier
	images     ports.ImageStore
	logger     zerolog.Logger

	mu       sync.Mutex
	loadedAt time.Time
}

func NewInspectionService(
	repo ports.InspectionRepository,
	classifier ports.Classifier,
	images ports.ImageStore,
	logger zerolog.Logger,
) *InspectionService {
	return &InspectionService{
		repo:       repo,
		classifier: classifier,
		images:     images,
		logger:     logger,
	}
}

// Submit runs one inspection. Validation failures abort before any side
// effect: no record is appended and no image file is written. The image is
// committed only after classification succeeds, and removed again (best
// effort) if the record append fails.
func (s *InspectionService) Submit(ctx context.Context, input ports.SubmitInspectionInput) (*domain.InspectionRecord, error) {
	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	classification, err := s.classifier.Classify(ctx, input.ImageData)
	if err != nil {
		s.logger.Warn().Err(err).Str("operator", input.Operator).Msg("classification failed")
		return nil, err
	}

	filename, err := s.images.Save(ctx, input.ImageName, input.ImageData)
	if err != nil {
		return nil, fmt.Errorf("persist image: %w", err)
	}

	record := &domain.InspectionRecord{
		Operator:      input.Operator,
		Mold:          input.Mold,
		Cavity:        input.Cavity,
		Defect:        input.Defect,
		Shift:         domain.Shift(input.Shift),
		Solution:      input.Solution,
		EquipmentType: domain.EquipmentType(input.EquipmentType),
		Result:        classification.Result,
		Confidence:    classification.Confidence,
		Timestamp:     time.Now().UTC().Truncate(time.Second),
		ImageFilename: filename,
	}

	if err := s.repo.Append(ctx, record); err != nil {
		if rmErr := s.images.Remove(ctx, filename); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("filename", filename).Msg("failed to remove image after append failure")
		}
		s.logger.Error().Err(err).Str("operator", input.Operator).Msg("failed to append inspection record")
		return nil, fmt.Errorf("append record: %w", err)
	}

	s.logger.Info().
		Str("operator", record.Operator).
		Str("mold", record.Mold).
		Str("result", string(record.Result)).
		Float64("confidence", record.Confidence).
		Msg("inspection recorded")

	return record, nil
}

// History returns the full inspection history, newest first.
func (s *InspectionService) History(ctx context.Context) ([]domain.InspectionRecord, error) {
	return s.repo.ListAll(ctx)
}

// ExportCSV streams the full history as CSV, header row first.
func (s *InspectionService) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Operator,
			r.Mold,
			r.Cavity,
			r.Defect,
			string(r.Shift),
			r.Solution,
			string(r.EquipmentType),
			string(r.Result),
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			r.Timestamp.Format(domain.TimestampLayout),
			r.ImageFilename,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReloadModel replaces the active classification model. On failure the
// previously active model (if any) remains in effect.
func (s *InspectionService) ReloadModel(ctx context.Context, artifact []byte) error {
	if err := s.classifier.ReloadModel(ctx, artifact); err != nil {
		s.logger.Warn().Err(err).Msg("model reload rejected")
		return err
	}

	s.mu.Lock()
	s.loadedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info().Int("artifact_bytes", len(artifact)).Msg("classification model replaced")
	return nil
}

func (s *InspectionService) ModelStatus(_ context.Context) ports.ModelStatus {
	s.mu.Lock()
	loadedAt := s.loadedAt
	s.mu.Unlock()
	return ports.ModelStatus{Loaded: s.classifier.Ready(), LoadedAt: loadedAt}
}

func validateSubmitInput(in ports.SubmitInspectionInput) error {
	required := map[string]string{
		"operator":       in.Operator,
		"mold":           in.Mold,
		"cavity":         in.Cavity,
		"defect":         in.Defect,
		"shift":          in.Shift,
		"solution":       in.Solution,
		"equipment_type": in.EquipmentType,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, field)
		}
	}
	if !domain.ValidShift(domain.Shift(in.Shift)) {
		return fmt.Errorf("%w: shift must be A, B or C", domain.ErrValidation)
	}
	if !domain.ValidEquipmentType(domain.EquipmentType(in.EquipmentType)) {
		return fmt.Errorf("%w: equipment_type must be Machine, Mold or Peripheral", domain.ErrValidation)
	}
	if len(in.ImageData) == 0 {
		return fmt.Errorf("%w: image", domain.ErrValidation)
	}
	return nil
}
