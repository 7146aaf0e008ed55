// Package language holds the set of language codes the translator accepts
// and their display names. A built-in table covers the common cases; an
// optional languages.json next to the config file can extend or replace it.
package language

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Auto is the pseudo-code that asks the backend to detect the source
// language. It is valid as a source but never as a target.
const Auto = "auto"

type Table struct {
	names map[string]string
}

func defaultNames() map[string]string {
	return map[string]string{
		Auto: "Auto detect",
		"ja": "Japanese",
		"en": "English",
		"zh": "Chinese",
		"ko": "Korean",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"it": "Italian",
		"pt": "Portuguese",
		"ru": "Russian",
		"ar": "Arabic",
		"hi": "Hindi",
		"th": "Thai",
		"vi": "Vietnamese",
		"id": "Indonesian",
		"nl": "Dutch",
		"pl": "Polish",
		"tr": "Turkish",
		"uk": "Ukrainian",
	}
}

// NewTable returns the built-in language table.
func NewTable() *Table {
	return &Table{names: defaultNames()}
}

type tableFile struct {
	Languages map[string]string `json:"languages"`
}

// LoadTable reads a languages.json file of the form
// {"languages": {"ja": "Japanese", ...}}. A missing file is not an error;
// the built-in table is returned instead.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("reading language table: %v", err)
	}

	var file tableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing language table: %v", err)
	}
	if len(file.Languages) == 0 {
		return NewTable(), nil
	}

	names := make(map[string]string, len(file.Languages)+1)
	for code, name := range file.Languages {
		names[Normalize(code)] = name
	}
	if _, ok := names[Auto]; !ok {
		names[Auto] = "Auto detect"
	}
	return &Table{names: names}, nil
}

// Normalize lower-cases a language code and trims whitespace.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (t *Table) IsSupported(code string) bool {
	_, ok := t.names[Normalize(code)]
	return ok
}

// Name returns the display name for a code, or the code itself when unknown.
func (t *Table) Name(code string) string {
	if name, ok := t.names[Normalize(code)]; ok {
		return name
	}
	return code
}

// Codes returns all known codes sorted, with "auto" first.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.names))
	for code := range t.names {
		if code == Auto {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return append([]string{Auto}, codes...)
}
