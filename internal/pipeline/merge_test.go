package pipeline

import "testing"

func TestMergeTranscripts(t *testing.T) {
	cases := []struct {
		name     string
		existing string
		addendum string
		want     string
	}{
		{"both present", "Original transcription.", "Additional details.", "Original transcription. Additional details."},
		{"trims both sides", "  first  ", "\nsecond\n", "first second"},
		{"empty existing", "", "only new", "only new"},
		{"empty addendum", "only old", "   ", "only old"},
		{"both empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MergeTranscripts(tc.existing, tc.addendum); got != tc.want {
				t.Errorf("MergeTranscripts(%q, %q) = %q, want %q", tc.existing, tc.addendum, got, tc.want)
			}
		})
	}
}
