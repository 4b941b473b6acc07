package sqlite

import "time"

// operatorModel mirrors the operators table.
type operatorModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:'operator'"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (operatorModel) TableName() string { return "operators" }

// inspectionModel mirrors the inspections history table. Append-only: the
// repository exposes no update or delete path.
type inspectionModel struct {
	ID            uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Operator      string  `gorm:"column:operator;type:varchar(100);not null"`
	Mold          string  `gorm:"column:mold;type:varchar(50);not null"`
	Cavity        string  `gorm:"column:cavity;type:varchar(50);not null"`
	Defect        string  `gorm:"column:defect;type:text;not null"`
	Shift         string  `gorm:"column:shift;type:varchar(1);not null"`
	Solution      string  `gorm:"column:solution;type:text;not null"`
	EquipmentType string  `gorm:"column:equipment_type;type:varchar(20);not null"`
	Result        string  `gorm:"column:result;type:varchar(3);not null"`
	Confidence    float64 `gorm:"column:confidence;not null"`
	// Stored in the "YYYY-MM-DD HH:MM:SS" layout so lexical and chronological
	// order coincide.
	Timestamp     string `gorm:"column:timestamp;type:varchar(19);index;not null"`
	ImageFilename string `gorm:"column:image_filename;type:varchar(255);not null"`
}

func (inspectionModel) TableName() string { return "inspections" }
