package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/terravet/terravet/internal/domain"
)

const historyFile = ".terravet/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage
// inside the validated tree. Entries are only ever appended and
// rendered; rule evaluation never reads them.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(rootPath string, entry domain.RunEntry) error {
	entries, err := h.Load(rootPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(rootPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(rootPath string) ([]domain.RunEntry, error) {
	fp := filepath.Join(rootPath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
