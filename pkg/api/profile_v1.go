// pkg/api/profile_v1.go
package api

// ProfileV1 is the stable JSON/JSONL schema for one genotyped sample.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ProfileV1 struct {
	Sample    string       `json:"sample"`
	Loci      []LocusV1    `json:"loci"`
	Amplimers []AmplimerV1 `json:"amplimers,omitempty"`
}

// LocusV1 is the consensus call of one locus.
type LocusV1 struct {
	Locus       string   `json:"locus"`
	Call        string   `json:"call"` // label, "a/b" when ambiguous, or "ND"
	Ambiguous   bool     `json:"ambiguous,omitempty"`
	Warning     int      `json:"warning,omitempty"` // 1-4
	WarningText string   `json:"warning_text,omitempty"`
	Modes       []string `json:"modes,omitempty"`
	Assigned    int      `json:"assigned"`
	Attempted   int      `json:"attempted"`
	Frequency   float64  `json:"frequency,omitempty"`
}

// AmplimerV1 is one classified amplimer of the report.
type AmplimerV1 struct {
	Locus      string `json:"locus"`
	Index      int    `json:"index"`
	Length     int    `json:"length"`
	Mismatches int    `json:"mismatches"`
	Repeat     string `json:"repeat,omitempty"` // empty when not assignable
}
