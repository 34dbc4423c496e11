// Package source loads JSON input documents from disk and gives tolerant,
// type-checked access to their fields.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var (
	ErrRead  = errors.New("unable to read file")
	ErrParse = errors.New("invalid JSON")
)

// ReadJSON reads the whole file at path and parses it as a single JSON
// document. The file handle is closed on every return path.
func ReadJSON(path string) (gjson.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	return Parse(data, path)
}

// Parse validates data as UTF-8 encoded JSON and returns the parsed document.
// The name is only used in error messages.
func Parse(data []byte, name string) (gjson.Result, error) {
	if !utf8.Valid(data) {
		return gjson.Result{}, fmt.Errorf("%w in %s: not valid UTF-8", ErrParse, name)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w in %s", ErrParse, name)
	}
	return gjson.ParseBytes(data), nil
}
