package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // waiting to be claimed
	JobStatusProcessing JobStatus = "processing" // claimed by exactly one worker
	JobStatusComplete   JobStatus = "complete"   // terminal success
	JobStatusError      JobStatus = "error"      // terminal failure
)

// Terminal reports whether no further transitions leave this status.
func (s JobStatus) Terminal() bool {
	return s == JobStatusComplete || s == JobStatusError
}

// JobStatuses holds the allowed values for the status field on Job.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusComplete),
	string(JobStatusError),
}
