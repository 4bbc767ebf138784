package dto

import "github.com/catalystlab/catalyst-backend/internal/models"

// ProcessExport is the denormalized payload for client-side document
// generation: the process plus every day, step and stored response.
type ProcessExport struct {
	Process models.Process `json:"process"`
	Days    []ExportDay    `json:"days"`
}

type ExportDay struct {
	models.TrainingDay
	Steps []ExportStep `json:"steps"`
}

type ExportStep struct {
	models.TrainingStep
	Responses map[string]string `json:"responses"`
}
