// Package fsio provides path-annotated file helpers for the artifact
// plumbing around compilation: JSON documents in, JSON documents out, and
// parent directory creation. Every failure carries the offending path.
package fsio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ReadJSON reads the JSON file at path into v. The returned error carries
// the path, whether the failure is a missing file, a permission problem, or
// malformed content.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot read %q", path)).
			WithCause(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("malformed JSON in %q", path)).
			WithCause(err)
	}
	return nil
}

// WriteJSON serializes v as JSON into the file at path, creating missing
// parent directories first.
func WriteJSON(path string, v any) error {
	if err := CreateParentDirs(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot create %q", path)).
			WithCause(err)
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err := json.NewEncoder(writer).Encode(v); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot encode %q", path)).
			WithCause(err)
	}
	if err := writer.Flush(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot write %q", path)).
			WithCause(err)
	}
	return nil
}

// CreateParentDirs creates the parent directory of file and all of its
// ancestors when missing.
func CreateParentDirs(file string) error {
	parent := filepath.Dir(file)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("cannot create artifact folder %q", parent)).
			WithCause(err)
	}
	return nil
}
