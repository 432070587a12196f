package domain

import "strings"

// SourceFile is one discovered Terraform file with its content loaded.
type SourceFile struct {
	Path    string // root-relative, slash-separated
	Name    string // base name
	Content string
	Lines   []string
}

// SourceSet is the immutable input every rule family reads: the
// discovered files in deterministic walk order plus the root-level
// facts the file-presence and documentation families need.
type SourceSet struct {
	Root        string // absolute root path
	Files       []SourceFile
	RootEntries map[string]bool // names of entries directly under Root
	Readme      string          // content of root README.md, "" when absent
	TotalSize   int64
}

// NewSourceFile builds a SourceFile, splitting content into lines once
// so rules never re-split.
func NewSourceFile(path, content string) SourceFile {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return SourceFile{
		Path:    path,
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Empty reports whether discovery found no Terraform files.
func (s *SourceSet) Empty() bool { return len(s.Files) == 0 }

// HasRootEntry reports whether the root directory contains an entry
// with the given name (file or directory, matching a bare existence
// check).
func (s *SourceSet) HasRootEntry(name string) bool {
	return s.RootEntries[name]
}

// RootFile returns the discovered file sitting directly at the root
// with the given name, or nil.
func (s *SourceSet) RootFile(name string) *SourceFile {
	for i := range s.Files {
		if s.Files[i].Path == name {
			return &s.Files[i]
		}
	}
	return nil
}
