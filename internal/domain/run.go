package domain

import "time"

// Run is one full validation pass over one root path.
type Run struct {
	Root       string    `json:"root"`
	Timestamp  time.Time `json:"timestamp"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Strict     bool      `json:"strict"`
	FileCount  int       `json:"file_count"`
	TotalSize  int64     `json:"total_size"`
	Results    []Result  `json:"results"`
	Summary    Summary   `json:"summary"`
}

// AllPassed reports overall success: zero failing results.
func (r *Run) AllPassed() bool { return r.Summary.AllPassed() }

// RunEntry is one line of persisted run history. History is an output
// artifact like the report; rule evaluation never reads it back.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Total      int    `json:"total"`
	Passed     int    `json:"passed"`
	Failed     int    `json:"failed"`
	AllPassed  bool   `json:"all_passed"`
}
