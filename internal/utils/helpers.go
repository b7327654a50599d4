package utils

import (
	"time"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/gen/ent"
	jobsv1 "github.com/fieldvoice/backoffice/gen/proto/jobs/v1"
	"github.com/fieldvoice/backoffice/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToJob maps an ent row to the transfer entity.
func ToJob(row *ent.Job) *entity.Job {
	return &entity.Job{
		ID:     row.ID,
		Kind:   constants.JobKind(row.Kind),
		Status: constants.JobStatus(row.Status),
		Inputs: entity.JobInputs{
			CompanyToken: row.CompanyToken,
			TargetID:     row.TargetID,
			AudioPath:    row.AudioPath,
			ImagePath:    row.ImagePath,
		},
		Outputs: entity.JobOutputs{
			Transcription: row.Transcription,
			DocumentPath:  row.DocumentPath,
			SummaryPath:   row.SummaryPath,
		},
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		ClaimedAt:    row.ClaimedAt,
		CompletedAt:  row.CompletedAt,
		ClaimedBy:    row.ClaimedBy,
	}
}

// ToStatusRecord projects a job onto the read model served to status polls.
func ToStatusRecord(j *entity.Job) *entity.StatusRecord {
	rec := &entity.StatusRecord{
		ID:          j.ID,
		Kind:        j.Kind,
		Status:      j.Status,
		Outputs:     j.Outputs,
		CreatedAt:   j.CreatedAt,
		CompletedAt: j.CompletedAt,
	}
	if j.Status == constants.JobStatusError {
		rec.ErrorMessage = strOrEmpty(j.ErrorMessage)
	}
	return rec
}

// ToPBJobStatus maps the status read model to its protobuf message.
func ToPBJobStatus(rec *entity.StatusRecord) *jobsv1.JobStatus {
	pb := &jobsv1.JobStatus{
		Id:            rec.ID.String(),
		Kind:          string(rec.Kind),
		Status:        string(rec.Status),
		Transcription: strOrEmpty(rec.Outputs.Transcription),
		DocumentPath:  strOrEmpty(rec.Outputs.DocumentPath),
		SummaryPath:   strOrEmpty(rec.Outputs.SummaryPath),
		ErrorMessage:  rec.ErrorMessage,
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.CompletedAt != nil {
		pb.CompletedAt = rec.CompletedAt.UTC().Format(time.RFC3339)
	}
	return pb
}
