package pipeline

import "strings"

// MergeTranscripts appends an addendum to an existing transcription. Both
// sides are trimmed and joined with a single space so repeated appends never
// accumulate whitespace. Either side may be empty.
func MergeTranscripts(existing, addendum string) string {
	existing = strings.TrimSpace(existing)
	addendum = strings.TrimSpace(addendum)

	switch {
	case existing == "":
		return addendum
	case addendum == "":
		return existing
	default:
		return existing + " " + addendum
	}
}
