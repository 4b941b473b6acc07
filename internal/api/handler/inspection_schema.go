package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// submitInspectionRequest carries the metadata fields of a multipart
// submission; the image file travels separately as form file "image".
type submitInspectionRequest struct {
	Mold          string `form:"mold"           validate:"required"`
	Cavity        string `form:"cavity"         validate:"required"`
	Defect        string `form:"defect"         validate:"required"`
	Shift         string `form:"shift"          validate:"required,oneof=A B C"`
	Solution      string `form:"solution"       validate:"required"`
	EquipmentType string `form:"equipment_type" validate:"required,oneof=Machine Mold Peripheral"`
}

type inspectionResponse struct {
	ID            uint    `json:"id"`
	Operator      string  `json:"operator"`
	Mold          string  `json:"mold"`
	Cavity        string  `json:"cavity"`
	Defect        string  `json:"defect"`
	Shift         string  `json:"shift"`
	Solution      string  `json:"solution"`
	EquipmentType string  `json:"equipment_type"`
	Result        string  `json:"result"`
	Confidence    float64 `json:"confidence"`
	Timestamp     string  `json:"timestamp"`
	ImageFilename string  `json:"image_filename"`
}

type historyResponse struct {
	Items []inspectionResponse `json:"items"`
	Total int                  `json:"total"`
}

type modelStatusResponse struct {
	Loaded   bool   `json:"loaded"`
	LoadedAt string `json:"loaded_at,omitempty"`
}
