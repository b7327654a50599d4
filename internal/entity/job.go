package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
)

// JobInputs holds the kind-specific references a job is created with.
type JobInputs struct {
	CompanyToken string `json:"company_token"`
	TargetID     string `json:"target_id"`
	AudioPath    string `json:"audio_path"`
	ImagePath    string `json:"image_path,omitempty"`
}

// JobOutputs holds results populated as pipeline stages complete.
type JobOutputs struct {
	Transcription *string `json:"transcription,omitempty"`
	DocumentPath  *string `json:"document_path,omitempty"`
	SummaryPath   *string `json:"summary_path,omitempty"`
}

// Job represents a job row for data transfer between layers.
type Job struct {
	ID           uuid.UUID           `json:"id"`
	Kind         constants.JobKind   `json:"kind"`
	Status       constants.JobStatus `json:"status"`
	Inputs       JobInputs           `json:"inputs"`
	Outputs      JobOutputs          `json:"outputs"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	ClaimedAt    *time.Time          `json:"claimed_at,omitempty"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	ClaimedBy    *string             `json:"claimed_by,omitempty"`
}

// StatusRecord is the read model served to status polls.
type StatusRecord struct {
	ID           uuid.UUID           `json:"id"`
	Kind         constants.JobKind   `json:"kind"`
	Status       constants.JobStatus `json:"status"`
	Outputs      JobOutputs          `json:"outputs"`
	ErrorMessage string              `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
}
