package dto

import "time"

type ResponseUpsertRequest struct {
	DayID      uint   `json:"day_id"`
	StepID     uint   `json:"step_id"`
	FieldName  string `json:"field_name"`
	FieldValue string `json:"field_value"`
}

type BatchResponsesRequest struct {
	Responses []ResponseUpsertRequest `json:"responses"`
}

// BatchResult reports the outcome of one entry in a batch upsert. The batch
// as a whole is not atomic; entries already applied stay applied when a later
// one fails.
type BatchResult struct {
	DayID     uint   `json:"day_id"`
	StepID    uint   `json:"step_id"`
	FieldName string `json:"field_name"`
	Saved     bool   `json:"saved"`
	Reason    string `json:"reason,omitempty"`
}

// ResponseRecord is the scope-neutral row shape shared by training and
// process responses.
type ResponseRecord struct {
	DayID      uint      `json:"day_id"`
	StepID     uint      `json:"step_id"`
	FieldName  string    `json:"field_name"`
	FieldValue string    `json:"field_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
