package domain

// SourceScanner discovers Terraform files under a root path and loads
// their contents.
type SourceScanner interface {
	Scan(rootPath string, excludePaths ...string) (*SourceSet, error)
}

// ConfigLoader reads project-level configuration from the validated tree.
type ConfigLoader interface {
	Load(rootPath string) (Config, error)
}

// RunHistory persists one entry per validation run.
type RunHistory interface {
	Save(rootPath string, entry RunEntry) error
	Load(rootPath string) ([]RunEntry, error)
}

// GitInfo exposes version-control facts about the validated tree.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// ReportWriter persists a run as a markdown report.
type ReportWriter interface {
	Write(path string, run *Run) error
}
