package domain

import (
	"errors"
	"time"
)

// Shift identifies the production shift an inspection belongs to.
type Shift string

const (
	ShiftA Shift = "A"
	ShiftB Shift = "B"
	ShiftC Shift = "C"
)

// EquipmentType identifies which kind of equipment the applied fix targeted.
type EquipmentType string

const (
	EquipmentMachine    EquipmentType = "Machine"
	EquipmentMold       EquipmentType = "Mold"
	EquipmentPeripheral EquipmentType = "Peripheral"
)

// TimestampLayout is the wire and storage format for inspection timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrOperatorNotFound = errors.New("operator not found")
var ErrOperatorExists = errors.New("operator already exists")
var ErrValidation = errors.New("missing required field")
var ErrImageDecode = errors.New("image could not be decoded")
var ErrModelLoad = errors.New("model artifact could not be loaded")
var ErrModelOutput = errors.New("model produced an invalid output")
var ErrNoModelLoaded = errors.New("no classification model loaded")
var ErrSessionRevoked = errors.New("session has been revoked")

// ValidShift reports whether s is one of the fixed shift labels.
func ValidShift(s Shift) bool {
	return s == ShiftA || s == ShiftB || s == ShiftC
}

// ValidEquipmentType reports whether e is one of the fixed equipment labels.
func ValidEquipmentType(e EquipmentType) bool {
	return e == EquipmentMachine || e == EquipmentMold || e == EquipmentPeripheral
}

// InspectionRecord is one row of the append-only inspection history.
// Rows are never updated or deleted after Append.
type InspectionRecord struct {
	ID            uint          `json:"id"`
	Operator      string        `json:"operator"`
	Mold          string        `json:"mold"`
	Cavity        string        `json:"cavity"`
	Defect        string        `json:"defect"`
	Shift         Shift         `json:"shift"`
	Solution      string        `json:"solution"`
	EquipmentType EquipmentType `json:"equipment_type"`
	Result        Result        `json:"result"`
	Confidence    float64       `json:"confidence"`
	Timestamp     time.Time     `json:"timestamp"`
	ImageFilename string        `json:"image_filename"`
}
