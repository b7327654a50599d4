package constants

// JobKind selects which pipeline a job runs. Immutable after creation.
type JobKind string

const (
	// JobKindReceipt transcribes a voice note and renders the combined
	// receipt document from the attached image.
	JobKindReceipt JobKind = "receipt"
	// JobKindEstimate transcribes an estimate walkthrough and runs
	// best-effort task extraction on the result.
	JobKindEstimate JobKind = "estimate"
	// JobKindEstimateAppend transcribes follow-up audio and merges it into
	// the target estimate job's existing transcription.
	JobKindEstimateAppend JobKind = "estimate_append"
)

// JobKinds lists every kind in worker claim priority order.
var JobKinds = []JobKind{JobKindReceipt, JobKindEstimate, JobKindEstimateAppend}

// Valid reports whether k is a known kind.
func (k JobKind) Valid() bool {
	switch k {
	case JobKindReceipt, JobKindEstimate, JobKindEstimateAppend:
		return true
	}
	return false
}

// JobKindValues holds the allowed values for the kind field on Job.
var JobKindValues = []string{
	string(JobKindReceipt),
	string(JobKindEstimate),
	string(JobKindEstimateAppend),
}
