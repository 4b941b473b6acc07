package sqlite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// InspectionRepository implements ports.InspectionRepository over the
// inspections table.
type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

// Append inserts one record as a single atomic row and writes the assigned
// surrogate id back into record.
func (r *InspectionRepository) Append(ctx context.Context, record *domain.InspectionRecord) error {
	m := inspectionModel{
		Operator:      record.Operator,
		Mold:          record.Mold,
		Cavity:        record.Cavity,
		Defect:        record.Defect,
		Shift:         string(record.Shift),
		Solution:      record.Solution,
		EquipmentType: string(record.EquipmentType),
		Result:        string(record.Result),
		Confidence:    record.Confidence,
		Timestamp:     record.Timestamp.UTC().Format(domain.TimestampLayout),
		ImageFilename: record.ImageFilename,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert inspection: %w", err)
	}
	record.ID = m.ID
	return nil
}

// ListAll returns every record, most recent first.
func (r *InspectionRepository) ListAll(ctx context.Context) ([]domain.InspectionRecord, error) {
	var models []inspectionModel
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}

	records := make([]domain.InspectionRecord, 0, len(models))
	for i := range models {
		rec, err := toDomainInspection(&models[i])
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func toDomainInspection(m *inspectionModel) (*domain.InspectionRecord, error) {
	ts, err := time.ParseInLocation(domain.TimestampLayout, m.Timestamp, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse inspection %d timestamp %q: %w", m.ID, m.Timestamp, err)
	}
	return &domain.InspectionRecord{
		ID:            m.ID,
		Operator:      m.Operator,
		Mold:          m.Mold,
		Cavity:        m.Cavity,
		Defect:        m.Defect,
		Shift:         domain.Shift(m.Shift),
		Solution:      m.Solution,
		EquipmentType: domain.EquipmentType(m.EquipmentType),
		Result:        domain.Result(m.Result),
		Confidence:    m.Confidence,
		Timestamp:     ts,
		ImageFilename: m.ImageFilename,
	}, nil
}
