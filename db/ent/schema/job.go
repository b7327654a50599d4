package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/fieldvoice/backoffice/constants"
	"github.com/fieldvoice/backoffice/db/ent/schema/utils"
)

// Job is one unit of asynchronous work: a voice note plus kind-specific
// attachments, tracked pending -> processing -> {complete, error}.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("kind").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.JobKindValues...)),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),

		// inputs
		field.String("company_token").NotEmpty().Immutable(),
		field.String("target_id").NotEmpty().Immutable(),
		field.String("audio_path").NotEmpty().Immutable(),
		field.String("image_path").Optional().Immutable(),

		// outputs, each written at most once by the finalizing worker
		field.String("transcription").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("document_path").Optional().Nillable(),
		field.String("summary_path").Optional().Nillable(),

		// only set when status = error
		field.String("error_message").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("claimed_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.String("claimed_by").Optional().Nillable(),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "status", "created_at"),
		index.Fields("company_token", "target_id"),
	}
}
