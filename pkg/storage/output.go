package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
)

// WriteResult reports what a document write did, so the caller can print a
// summary or a diff.
type WriteResult struct {
	Path    string
	Created bool // file did not exist before
	Changed bool // content differs from what was on disk
	Diff    string
}

// WriteDocument serializes a document as indented JSON and writes it to
// path, creating parent directories as needed. Writes are diff-aware: when
// the file already holds identical content nothing is written, and when it
// changes the result carries a unified diff of the overwrite. File-system
// failures are fatal for the build.
func WriteDocument(path string, doc interface{}) (*WriteResult, error) {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	res := &WriteResult{Path: path}

	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read existing file: %w", err)
		}
		res.Created = true
	} else if string(existing) == string(data) {
		return res, nil
	}
	res.Changed = true

	if !res.Created {
		res.Diff = generateDiff(path, string(existing), string(data))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return res, nil
}

// generateDiff creates a unified diff between the previous and new content.
func generateDiff(filename, original, modified string) string {
	edits := udiff.Strings(original, modified)
	unified, err := udiff.ToUnified("a/"+filename, "b/"+filename, original, edits, 3)
	if err != nil {
		return fmt.Sprintf("--- a/%s\n+++ b/%s\n(diff generation failed)\n", filename, filename)
	}
	return unified
}
