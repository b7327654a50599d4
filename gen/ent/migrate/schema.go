// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "company_token", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "audio_path", Type: field.TypeString},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "transcription", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "document_path", Type: field.TypeString, Nullable: true},
		{Name: "summary_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_kind_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[2], JobsColumns[11]},
			},
			{
				Name:    "job_company_token_target_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
}
