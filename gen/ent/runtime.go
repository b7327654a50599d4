// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fieldvoice/backoffice/db/ent/schema"
	"github.com/fieldvoice/backoffice/gen/ent/job"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescKind is the schema descriptor for kind field.
	jobDescKind := jobFields[1].Descriptor()
	// job.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	job.KindValidator = func() func(string) error {
		validators := jobDescKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(kind string) error {
			for _, fn := range fns {
				if err := fn(kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[2].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCompanyToken is the schema descriptor for company_token field.
	jobDescCompanyToken := jobFields[3].Descriptor()
	// job.CompanyTokenValidator is a validator for the "company_token" field. It is called by the builders before save.
	job.CompanyTokenValidator = jobDescCompanyToken.Validators[0].(func(string) error)
	// jobDescTargetID is the schema descriptor for target_id field.
	jobDescTargetID := jobFields[4].Descriptor()
	// job.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	job.TargetIDValidator = jobDescTargetID.Validators[0].(func(string) error)
	// jobDescAudioPath is the schema descriptor for audio_path field.
	jobDescAudioPath := jobFields[5].Descriptor()
	// job.AudioPathValidator is a validator for the "audio_path" field. It is called by the builders before save.
	job.AudioPathValidator = jobDescAudioPath.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
