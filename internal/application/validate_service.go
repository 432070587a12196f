package application

import (
	"fmt"
	"time"

	"github.com/terravet/terravet/internal/domain"
	"github.com/terravet/terravet/internal/domain/rules"
)

// ValidateService orchestrates the validation pipeline:
// load config → scan tree → run rule families → summarize.
type ValidateService struct {
	scanner      domain.SourceScanner
	configLoader domain.ConfigLoader
}

func NewValidateService(scanner domain.SourceScanner, configLoader domain.ConfigLoader) *ValidateService {
	return &ValidateService{scanner: scanner, configLoader: configLoader}
}

// Options carries per-run switches.
type Options struct {
	// Strict is recorded on the run and reserved for future severity
	// escalation; it does not change which checks execute.
	Strict bool
}

// ValidateTree runs every registered check against the Terraform tree rooted
// at rootPath. A tree containing no Terraform files yields a single failing
// discovery result, not an error; errors are reserved for unreadable input.
// When the scanner loads part of the tree before failing, the run built from
// that part is returned together with the error.
func (s *ValidateService) ValidateTree(rootPath string, opts Options) (*domain.Run, error) {
	cfg, err := s.configLoader.Load(rootPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	src, scanErr := s.scanner.Scan(rootPath, cfg.ExcludePaths...)
	if scanErr != nil {
		scanErr = fmt.Errorf("scanning tree: %w", scanErr)
	}
	if src == nil {
		return nil, scanErr
	}

	var results []domain.Result
	if src.Empty() {
		results = []domain.Result{{
			CheckName: "File Discovery",
			Passed:    false,
			Message:   fmt.Sprintf("No Terraform files found in %s", src.Root),
		}}
	} else {
		results = rules.RunAll(src)
	}

	return &domain.Run{
		Root:      src.Root,
		Timestamp: time.Now(),
		Strict:    opts.Strict,
		FileCount: len(src.Files),
		TotalSize: src.TotalSize,
		Results:   results,
		Summary:   domain.Summarize(results),
	}, scanErr
}
