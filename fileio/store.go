// Package fileio loads and saves documents as lines of text.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrIsDirectory is returned when a path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// Format records how a file was stored so a save writes it back the same way.
type Format struct {
	Encoding        *Encoding
	CRLF            bool
	TrailingNewline bool
}

// defaultFormat applies to files the store has not loaded.
var defaultFormat = Format{Encoding: UTF8, TrailingNewline: true}

// Store reads and writes files on the local filesystem.
type Store struct {
	// Backup keeps the previous contents of a file as path~ before a save.
	Backup bool

	mu      sync.Mutex
	formats map[string]Format
}

// NewStore creates a Store.
func NewStore(backup bool) *Store {
	return &Store{
		Backup:  backup,
		formats: make(map[string]Format),
	}
}

// Load reads path as lines. An empty file is one empty line. Both "\n" and
// "\r\n" endings are accepted and a final newline does not add a line.
func (s *Store) Load(path string) ([]string, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	enc := DetectEncoding(data)
	text, err := decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, enc.Name, err)
	}

	lines, format := splitText(string(text))
	format.Encoding = enc
	s.setFormat(path, format)
	return lines, nil
}

// Save writes lines to path in the format it was loaded with.
func (s *Store) Save(path string, lines []string) error {
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return fmt.Errorf("%s: %w", path, ErrIsDirectory)
		}
		if s.Backup {
			if err := copyFile(path, path+"~", fi.Mode().Perm()); err != nil {
				return fmt.Errorf("backing up %s: %w", path, err)
			}
		}
	}

	format := s.Format(path)
	data, err := encode([]byte(joinText(lines, format)), format.Encoding)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", path, format.Encoding.Name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	s.setFormat(path, format)
	return nil
}

// Format returns the stored format for path, or the default for new files.
func (s *Store) Format(path string) Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.formats[path]; ok {
		return f
	}
	return defaultFormat
}

func (s *Store) setFormat(path string, f Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.formats == nil {
		s.formats = make(map[string]Format)
	}
	s.formats[path] = f
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func splitText(text string) ([]string, Format) {
	var f Format
	if text == "" {
		return []string{""}, f
	}
	f.CRLF = strings.Contains(text, "\r\n")
	f.TrailingNewline = strings.HasSuffix(text, "\n")

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, f
}

func joinText(lines []string, f Format) string {
	eol := "\n"
	if f.CRLF {
		eol = "\r\n"
	}
	text := strings.Join(lines, eol)
	if f.TrailingNewline {
		text += eol
	}
	return text
}

func copyFile(src, dst string, perm os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, perm)
}
