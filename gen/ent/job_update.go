// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldvoice/backoffice/gen/ent/job"
	"github.com/fieldvoice/backoffice/gen/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscription sets the "transcription" field.
func (_u *JobUpdate) SetTranscription(v string) *JobUpdate {
	_u.mutation.SetTranscription(v)
	return _u
}

// SetNillableTranscription sets the "transcription" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTranscription(v *string) *JobUpdate {
	if v != nil {
		_u.SetTranscription(*v)
	}
	return _u
}

// ClearTranscription clears the value of the "transcription" field.
func (_u *JobUpdate) ClearTranscription() *JobUpdate {
	_u.mutation.ClearTranscription()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *JobUpdate) SetDocumentPath(v string) *JobUpdate {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDocumentPath(v *string) *JobUpdate {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *JobUpdate) ClearDocumentPath() *JobUpdate {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetSummaryPath sets the "summary_path" field.
func (_u *JobUpdate) SetSummaryPath(v string) *JobUpdate {
	_u.mutation.SetSummaryPath(v)
	return _u
}

// SetNillableSummaryPath sets the "summary_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSummaryPath(v *string) *JobUpdate {
	if v != nil {
		_u.SetSummaryPath(*v)
	}
	return _u
}

// ClearSummaryPath clears the value of the "summary_path" field.
func (_u *JobUpdate) ClearSummaryPath() *JobUpdate {
	_u.mutation.ClearSummaryPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *JobUpdate) SetClaimedAt(v time.Time) *JobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClaimedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *JobUpdate) ClearClaimedAt() *JobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdate) SetClaimedBy(v string) *JobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClaimedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdate) ClearClaimedBy() *JobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(job.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Transcription(); ok {
		_spec.SetField(job.FieldTranscription, field.TypeString, value)
	}
	if _u.mutation.TranscriptionCleared() {
		_spec.ClearField(job.FieldTranscription, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(job.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(job.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryPath(); ok {
		_spec.SetField(job.FieldSummaryPath, field.TypeString, value)
	}
	if _u.mutation.SummaryPathCleared() {
		_spec.ClearField(job.FieldSummaryPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(job.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(job.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTranscription sets the "transcription" field.
func (_u *JobUpdateOne) SetTranscription(v string) *JobUpdateOne {
	_u.mutation.SetTranscription(v)
	return _u
}

// SetNillableTranscription sets the "transcription" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTranscription(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTranscription(*v)
	}
	return _u
}

// ClearTranscription clears the value of the "transcription" field.
func (_u *JobUpdateOne) ClearTranscription() *JobUpdateOne {
	_u.mutation.ClearTranscription()
	return _u
}

// SetDocumentPath sets the "document_path" field.
func (_u *JobUpdateOne) SetDocumentPath(v string) *JobUpdateOne {
	_u.mutation.SetDocumentPath(v)
	return _u
}

// SetNillableDocumentPath sets the "document_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDocumentPath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDocumentPath(*v)
	}
	return _u
}

// ClearDocumentPath clears the value of the "document_path" field.
func (_u *JobUpdateOne) ClearDocumentPath() *JobUpdateOne {
	_u.mutation.ClearDocumentPath()
	return _u
}

// SetSummaryPath sets the "summary_path" field.
func (_u *JobUpdateOne) SetSummaryPath(v string) *JobUpdateOne {
	_u.mutation.SetSummaryPath(v)
	return _u
}

// SetNillableSummaryPath sets the "summary_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSummaryPath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSummaryPath(*v)
	}
	return _u
}

// ClearSummaryPath clears the value of the "summary_path" field.
func (_u *JobUpdateOne) ClearSummaryPath() *JobUpdateOne {
	_u.mutation.ClearSummaryPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *JobUpdateOne) SetClaimedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClaimedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *JobUpdateOne) ClearClaimedAt() *JobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *JobUpdateOne) SetClaimedBy(v string) *JobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClaimedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *JobUpdateOne) ClearClaimedBy() *JobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(job.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Transcription(); ok {
		_spec.SetField(job.FieldTranscription, field.TypeString, value)
	}
	if _u.mutation.TranscriptionCleared() {
		_spec.ClearField(job.FieldTranscription, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentPath(); ok {
		_spec.SetField(job.FieldDocumentPath, field.TypeString, value)
	}
	if _u.mutation.DocumentPathCleared() {
		_spec.ClearField(job.FieldDocumentPath, field.TypeString)
	}
	if value, ok := _u.mutation.SummaryPath(); ok {
		_spec.SetField(job.FieldSummaryPath, field.TypeString, value)
	}
	if _u.mutation.SummaryPathCleared() {
		_spec.ClearField(job.FieldSummaryPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(job.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(job.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(job.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(job.FieldClaimedBy, field.TypeString)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
