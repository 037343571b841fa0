// Package history implements the HistoryView of spec §3/§4: a cursor
// over an external, pluggable history provider, plus the history
// expansion syntax of spec §6.
package history

import (
	"bufio"
	"fmt"
	"os"
)

// Source is the external history provider collaborator named in
// spec §1 ("persistent history store... specified only at its
// interface") and detailed in Design Note 9: size, get, and append.
// Any in-memory or file-backed implementation satisfies it.
type Source interface {
	// Len returns the number of stored lines.
	Len() int
	// Get returns the line at index i (0-based, oldest first).
	Get(i int) (string, error)
	// Add appends a new line, returning its index.
	Add(line string) (int, error)
}

// Memory is the default in-memory Source.
type Memory struct {
	lines []string
}

// NewMemory returns an empty in-memory history source.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Len() int { return len(m.lines) }

func (m *Memory) Get(i int) (string, error) {
	if i < 0 || i >= len(m.lines) {
		return "", fmt.Errorf("history: index %d out of range", i)
	}

	return m.lines[i], nil
}

func (m *Memory) Add(line string) (int, error) {
	m.lines = append(m.lines, line)
	return len(m.lines) - 1, nil
}

// File is a Source backed by a flat file, one entry per line, loaded
// eagerly and appended to on every Add.
type File struct {
	path  string
	lines []string
}

// NewFile opens a file-backed history source, loading any existing
// entries; a missing file is not created here but by the first Add.
func NewFile(path string) (*File, error) {
	f := &File{path: path}

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return f, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		f.lines = append(f.lines, scanner.Text())
	}

	return f, scanner.Err()
}

func (f *File) Len() int { return len(f.lines) }

func (f *File) Get(i int) (string, error) {
	if i < 0 || i >= len(f.lines) {
		return "", fmt.Errorf("history: index %d out of range", i)
	}

	return f.lines[i], nil
}

func (f *File) Add(line string) (int, error) {
	f.lines = append(f.lines, line)

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return len(f.lines) - 1, err
	}
	defer file.Close()

	_, err = fmt.Fprintln(file, line)

	return len(f.lines) - 1, err
}
