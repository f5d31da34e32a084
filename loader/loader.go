// Package loader reads ledger export files and materializes them as line
// sequences for the engine. Government exports are commonly encoded in
// Latin-1; the loader transparently decodes them to UTF-8 unless the content
// already is valid UTF-8.
//
// The engine itself never touches the filesystem: it consumes the lines the
// loader (or any other caller) hands it.
package loader

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Loader reads export files with configurable encoding behavior.
type Loader struct {
	// ForceLatin1 decodes unconditionally instead of sniffing. Some exports
	// are valid UTF-8 by accident while actually being Latin-1.
	ForceLatin1 bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithForceLatin1 always decodes the file as ISO8859-1.
func WithForceLatin1() Option {
	return func(l *Loader) { l.ForceLatin1 = true }
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a file and returns its lines.
func (l *Loader) Load(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return l.Lines(data), nil
}

// Lines decodes raw file content and splits it into lines. Windows line
// endings are tolerated.
func (l *Loader) Lines(data []byte) []string {
	text := l.decode(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func (l *Loader) decode(data []byte) string {
	if !l.ForceLatin1 && utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO8859-1 decoding cannot actually fail (every byte is valid);
		// keep the raw bytes if it somehow does.
		return string(data)
	}
	return string(decoded)
}
