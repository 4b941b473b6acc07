package handler

import (
	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
)

// --- Request → Service input ---

func toSubmitInput(req submitInspectionRequest, operator, imageName string, imageData []byte) ports.SubmitInspectionInput {
	return ports.SubmitInspectionInput{
		Operator:      operator,
		Mold:          req.Mold,
		Cavity:        req.Cavity,
		Defect:        req.Defect,
		Shift:         req.Shift,
		Solution:      req.Solution,
		EquipmentType: req.EquipmentType,
		ImageName:     imageName,
		ImageData:     imageData,
	}
}

// --- Service result → HTTP response ---

func toInspectionResponse(r *domain.InspectionRecord) inspectionResponse {
	return inspectionResponse{
		ID:            r.ID,
		Operator:      r.Operator,
		Mold:          r.Mold,
		Cavity:        r.Cavity,
		Defect:        r.Defect,
		Shift:         string(r.Shift),
		Solution:      r.Solution,
		EquipmentType: string(r.EquipmentType),
		Result:        string(r.Result),
		Confidence:    r.Confidence,
		Timestamp:     r.Timestamp.Format(domain.TimestampLayout),
		ImageFilename: r.ImageFilename,
	}
}

func toHistoryResponse(records []domain.InspectionRecord) historyResponse {
	items := make([]inspectionResponse, 0, len(records))
	for i := range records {
		items = append(items, toInspectionResponse(&records[i]))
	}
	return historyResponse{Items: items, Total: len(items)}
}
