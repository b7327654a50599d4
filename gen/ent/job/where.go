// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fieldvoice/backoffice/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldKind, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// CompanyToken applies equality check predicate on the "company_token" field. It's identical to CompanyTokenEQ.
func CompanyToken(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompanyToken, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetID, v))
}

// AudioPath applies equality check predicate on the "audio_path" field. It's identical to AudioPathEQ.
func AudioPath(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAudioPath, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldImagePath, v))
}

// Transcription applies equality check predicate on the "transcription" field. It's identical to TranscriptionEQ.
func Transcription(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscription, v))
}

// DocumentPath applies equality check predicate on the "document_path" field. It's identical to DocumentPathEQ.
func DocumentPath(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentPath, v))
}

// SummaryPath applies equality check predicate on the "summary_path" field. It's identical to SummaryPathEQ.
func SummaryPath(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummaryPath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStatus, v))
}

// CompanyTokenEQ applies the EQ predicate on the "company_token" field.
func CompanyTokenEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompanyToken, v))
}

// CompanyTokenNEQ applies the NEQ predicate on the "company_token" field.
func CompanyTokenNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompanyToken, v))
}

// CompanyTokenIn applies the In predicate on the "company_token" field.
func CompanyTokenIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompanyToken, vs...))
}

// CompanyTokenNotIn applies the NotIn predicate on the "company_token" field.
func CompanyTokenNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompanyToken, vs...))
}

// CompanyTokenGT applies the GT predicate on the "company_token" field.
func CompanyTokenGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompanyToken, v))
}

// CompanyTokenGTE applies the GTE predicate on the "company_token" field.
func CompanyTokenGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompanyToken, v))
}

// CompanyTokenLT applies the LT predicate on the "company_token" field.
func CompanyTokenLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompanyToken, v))
}

// CompanyTokenLTE applies the LTE predicate on the "company_token" field.
func CompanyTokenLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompanyToken, v))
}

// CompanyTokenContains applies the Contains predicate on the "company_token" field.
func CompanyTokenContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCompanyToken, v))
}

// CompanyTokenHasPrefix applies the HasPrefix predicate on the "company_token" field.
func CompanyTokenHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCompanyToken, v))
}

// CompanyTokenHasSuffix applies the HasSuffix predicate on the "company_token" field.
func CompanyTokenHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCompanyToken, v))
}

// CompanyTokenEqualFold applies the EqualFold predicate on the "company_token" field.
func CompanyTokenEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCompanyToken, v))
}

// CompanyTokenContainsFold applies the ContainsFold predicate on the "company_token" field.
func CompanyTokenContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCompanyToken, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTargetID, v))
}

// AudioPathEQ applies the EQ predicate on the "audio_path" field.
func AudioPathEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAudioPath, v))
}

// AudioPathNEQ applies the NEQ predicate on the "audio_path" field.
func AudioPathNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAudioPath, v))
}

// AudioPathIn applies the In predicate on the "audio_path" field.
func AudioPathIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAudioPath, vs...))
}

// AudioPathNotIn applies the NotIn predicate on the "audio_path" field.
func AudioPathNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAudioPath, vs...))
}

// AudioPathGT applies the GT predicate on the "audio_path" field.
func AudioPathGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAudioPath, v))
}

// AudioPathGTE applies the GTE predicate on the "audio_path" field.
func AudioPathGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAudioPath, v))
}

// AudioPathLT applies the LT predicate on the "audio_path" field.
func AudioPathLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAudioPath, v))
}

// AudioPathLTE applies the LTE predicate on the "audio_path" field.
func AudioPathLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAudioPath, v))
}

// AudioPathContains applies the Contains predicate on the "audio_path" field.
func AudioPathContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAudioPath, v))
}

// AudioPathHasPrefix applies the HasPrefix predicate on the "audio_path" field.
func AudioPathHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAudioPath, v))
}

// AudioPathHasSuffix applies the HasSuffix predicate on the "audio_path" field.
func AudioPathHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAudioPath, v))
}

// AudioPathEqualFold applies the EqualFold predicate on the "audio_path" field.
func AudioPathEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAudioPath, v))
}

// AudioPathContainsFold applies the ContainsFold predicate on the "audio_path" field.
func AudioPathContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAudioPath, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathIsNil applies the IsNil predicate on the "image_path" field.
func ImagePathIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldImagePath))
}

// ImagePathNotNil applies the NotNil predicate on the "image_path" field.
func ImagePathNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldImagePath))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldImagePath, v))
}

// TranscriptionEQ applies the EQ predicate on the "transcription" field.
func TranscriptionEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscription, v))
}

// TranscriptionNEQ applies the NEQ predicate on the "transcription" field.
func TranscriptionNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTranscription, v))
}

// TranscriptionIn applies the In predicate on the "transcription" field.
func TranscriptionIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTranscription, vs...))
}

// TranscriptionNotIn applies the NotIn predicate on the "transcription" field.
func TranscriptionNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTranscription, vs...))
}

// TranscriptionGT applies the GT predicate on the "transcription" field.
func TranscriptionGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTranscription, v))
}

// TranscriptionGTE applies the GTE predicate on the "transcription" field.
func TranscriptionGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTranscription, v))
}

// TranscriptionLT applies the LT predicate on the "transcription" field.
func TranscriptionLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTranscription, v))
}

// TranscriptionLTE applies the LTE predicate on the "transcription" field.
func TranscriptionLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTranscription, v))
}

// TranscriptionContains applies the Contains predicate on the "transcription" field.
func TranscriptionContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTranscription, v))
}

// TranscriptionHasPrefix applies the HasPrefix predicate on the "transcription" field.
func TranscriptionHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTranscription, v))
}

// TranscriptionHasSuffix applies the HasSuffix predicate on the "transcription" field.
func TranscriptionHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTranscription, v))
}

// TranscriptionIsNil applies the IsNil predicate on the "transcription" field.
func TranscriptionIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTranscription))
}

// TranscriptionNotNil applies the NotNil predicate on the "transcription" field.
func TranscriptionNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTranscription))
}

// TranscriptionEqualFold applies the EqualFold predicate on the "transcription" field.
func TranscriptionEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTranscription, v))
}

// TranscriptionContainsFold applies the ContainsFold predicate on the "transcription" field.
func TranscriptionContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTranscription, v))
}

// DocumentPathEQ applies the EQ predicate on the "document_path" field.
func DocumentPathEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentPath, v))
}

// DocumentPathNEQ applies the NEQ predicate on the "document_path" field.
func DocumentPathNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDocumentPath, v))
}

// DocumentPathIn applies the In predicate on the "document_path" field.
func DocumentPathIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDocumentPath, vs...))
}

// DocumentPathNotIn applies the NotIn predicate on the "document_path" field.
func DocumentPathNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDocumentPath, vs...))
}

// DocumentPathGT applies the GT predicate on the "document_path" field.
func DocumentPathGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDocumentPath, v))
}

// DocumentPathGTE applies the GTE predicate on the "document_path" field.
func DocumentPathGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDocumentPath, v))
}

// DocumentPathLT applies the LT predicate on the "document_path" field.
func DocumentPathLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDocumentPath, v))
}

// DocumentPathLTE applies the LTE predicate on the "document_path" field.
func DocumentPathLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDocumentPath, v))
}

// DocumentPathContains applies the Contains predicate on the "document_path" field.
func DocumentPathContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldDocumentPath, v))
}

// DocumentPathHasPrefix applies the HasPrefix predicate on the "document_path" field.
func DocumentPathHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldDocumentPath, v))
}

// DocumentPathHasSuffix applies the HasSuffix predicate on the "document_path" field.
func DocumentPathHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldDocumentPath, v))
}

// DocumentPathIsNil applies the IsNil predicate on the "document_path" field.
func DocumentPathIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDocumentPath))
}

// DocumentPathNotNil applies the NotNil predicate on the "document_path" field.
func DocumentPathNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDocumentPath))
}

// DocumentPathEqualFold applies the EqualFold predicate on the "document_path" field.
func DocumentPathEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldDocumentPath, v))
}

// DocumentPathContainsFold applies the ContainsFold predicate on the "document_path" field.
func DocumentPathContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldDocumentPath, v))
}

// SummaryPathEQ applies the EQ predicate on the "summary_path" field.
func SummaryPathEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSummaryPath, v))
}

// SummaryPathNEQ applies the NEQ predicate on the "summary_path" field.
func SummaryPathNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSummaryPath, v))
}

// SummaryPathIn applies the In predicate on the "summary_path" field.
func SummaryPathIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSummaryPath, vs...))
}

// SummaryPathNotIn applies the NotIn predicate on the "summary_path" field.
func SummaryPathNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSummaryPath, vs...))
}

// SummaryPathGT applies the GT predicate on the "summary_path" field.
func SummaryPathGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSummaryPath, v))
}

// SummaryPathGTE applies the GTE predicate on the "summary_path" field.
func SummaryPathGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSummaryPath, v))
}

// SummaryPathLT applies the LT predicate on the "summary_path" field.
func SummaryPathLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSummaryPath, v))
}

// SummaryPathLTE applies the LTE predicate on the "summary_path" field.
func SummaryPathLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSummaryPath, v))
}

// SummaryPathContains applies the Contains predicate on the "summary_path" field.
func SummaryPathContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSummaryPath, v))
}

// SummaryPathHasPrefix applies the HasPrefix predicate on the "summary_path" field.
func SummaryPathHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSummaryPath, v))
}

// SummaryPathHasSuffix applies the HasSuffix predicate on the "summary_path" field.
func SummaryPathHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSummaryPath, v))
}

// SummaryPathIsNil applies the IsNil predicate on the "summary_path" field.
func SummaryPathIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSummaryPath))
}

// SummaryPathNotNil applies the NotNil predicate on the "summary_path" field.
func SummaryPathNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSummaryPath))
}

// SummaryPathEqualFold applies the EqualFold predicate on the "summary_path" field.
func SummaryPathEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSummaryPath, v))
}

// SummaryPathContainsFold applies the ContainsFold predicate on the "summary_path" field.
func SummaryPathContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSummaryPath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldClaimedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldClaimedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
