// Package uploads stores user-provided files (trip documents, letterhead
// images) under a single directory with generated names, so the original
// file names never reach the filesystem.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Store writes and removes files under its root directory.
type Store struct {
	root string
}

// New creates the upload directory if needed.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the upload directory.
func (s *Store) Root() string {
	return s.root
}

// Save writes the content to a new file named by a fresh UUID plus the
// sanitized extension of the original name, and returns the path relative
// to the upload root.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	return s.SaveIn("", originalName, r)
}

// SaveIn is Save into a subdirectory of the upload root (per-trip documents
// live under the trip's id, letterhead images under "config").
func (s *Store) SaveIn(subdir, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	rel := uuid.NewString() + ext
	if subdir != "" {
		clean := filepath.Clean(subdir)
		if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
			return "", fmt.Errorf("invalid upload subdirectory %q", subdir)
		}
		if err := os.MkdirAll(filepath.Join(s.root, clean), 0o755); err != nil {
			return "", fmt.Errorf("failed to create upload subdirectory: %w", err)
		}
		rel = filepath.Join(clean, rel)
	}

	f, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return rel, nil
}

// Open opens a stored file by its relative path. Paths that escape the
// upload root are rejected.
func (s *Store) Open(relPath string) (*os.File, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return f, nil
}

// Path returns the absolute path of a stored file, validating the relative
// path against traversal.
func (s *Store) Path(relPath string) (string, error) {
	return s.resolve(relPath)
}

// Remove deletes a stored file; a missing file is not an error.
func (s *Store) Remove(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

func (s *Store) resolve(relPath string) (string, error) {
	clean := filepath.Clean(relPath)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid upload path %q", relPath)
	}
	return filepath.Join(s.root, clean), nil
}

// SanitizeFilename makes a name safe for a Content-Disposition header or an
// export file: accents are folded to ASCII (é -> e), path separators and
// control characters become underscores.
func SanitizeFilename(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r < 32 || r == 127:
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "document"
	}
	return out
}
