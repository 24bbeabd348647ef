package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File is one side's parsed input: every entity's name with its ranked
// preference names, in file order.
type File struct {
	// Path the records were read from, used in diagnostics.
	Path string

	entries []Entry
}

// Entry is one data row: an entity and the names it ranked, best first.
type Entry struct {
	Name  string
	Prefs []string
}

// Entries returns the parsed rows in file order.
func (f *File) Entries() []Entry {
	return f.entries
}

// ReadFile parses the CSV file at path. Only the ".csv" extension is
// accepted. nameColumn is the header cell that marks the name column.
func ReadFile(path, nameColumn string) (*File, error) {
	switch ext := filepath.Ext(path); ext {
	case ".csv":
	case "":
		return nil, fmt.Errorf("unable to tell the input format of %s", path)
	default:
		return nil, fmt.Errorf("unrecognized input file format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return parse(path, f, nameColumn)
}

// parse reads CSV records from r. Records may have varying widths. The
// header row must contain nameColumn; a later row naming an entity already
// seen replaces that entity's preferences while keeping its position.
func parse(path string, r io.Reader, nameColumn string) (*File, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: missing %q header", path, nameColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	start := -1
	for i, h := range header {
		if strings.TrimSpace(h) == nameColumn {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%s: missing %q header", path, nameColumn)
	}

	file := &File{Path: path}
	seen := make(map[string]int)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if start >= len(record) {
			continue
		}

		name := strings.TrimSpace(record[start])
		if name == "" {
			continue
		}

		var prefs []string
		for _, cell := range record[start+1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			prefs = append(prefs, cell)
		}

		if pos, dup := seen[name]; dup {
			file.entries[pos].Prefs = prefs
			continue
		}

		seen[name] = len(file.entries)
		file.entries = append(file.entries, Entry{Name: name, Prefs: prefs})
	}

	return file, nil
}
