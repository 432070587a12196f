package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Result is one outcome of one rule evaluation. Results are values,
// created once and never merged; the same pattern matching on two
// lines yields two results.
type Result struct {
	CheckName string `json:"check_name"`
	Passed    bool   `json:"passed"`
	Message   string `json:"message"`
	FilePath  string `json:"file_path,omitempty"`
	Line      int    `json:"line_number,omitempty"`
}

// Family returns the check-name prefix before the first colon,
// e.g. "README: Prerequisites section" -> "README".
func (r Result) Family() string {
	if i := strings.Index(r.CheckName, ":"); i >= 0 {
		return r.CheckName[:i]
	}
	return r.CheckName
}

// Location renders the file attribution of a result, with the line
// number when the result is line-specific. Empty for tree-wide results.
func (r Result) Location() string {
	if r.FilePath == "" {
		return ""
	}
	if r.Line > 0 {
		return fmt.Sprintf("%s:%d", r.FilePath, r.Line)
	}
	return r.FilePath
}

// Summary tallies a result sequence. Derived, never stored.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summarize counts passes and failures over results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// AllPassed reports whether the run had zero failing results.
func (s Summary) AllPassed() bool { return s.Failed == 0 }

// PassRate returns the percentage of passing results, 0 when empty.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// ResultGroup is one check family with its results in encounter order.
type ResultGroup struct {
	Family  string
	Results []Result
}

// GroupResults buckets results by family for the persisted report:
// groups sorted by name, encounter order preserved within each group.
func GroupResults(results []Result) []ResultGroup {
	byFamily := make(map[string][]Result)
	var names []string
	for _, r := range results {
		f := r.Family()
		if _, ok := byFamily[f]; !ok {
			names = append(names, f)
		}
		byFamily[f] = append(byFamily[f], r)
	}
	sort.Strings(names)

	groups := make([]ResultGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, ResultGroup{Family: name, Results: byFamily[name]})
	}
	return groups
}

// Failures filters the failing results, preserving order.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
