package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// FileStore keeps uploaded cover images on local disk under a single base
// directory. The rest of the system only ever handles the stored filename.
type FileStore struct {
	basePath string
}

func New(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("file store base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating file store dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Save writes the content under a name derived from the suggestion and
// returns the stored filename.
func (fs *FileStore) Save(suggestedName string, r io.Reader) (string, error) {
	name := safeFilename(suggestedName)
	out, err := os.Create(filepath.Join(fs.basePath, name))
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. A missing file isn't an error.
func (fs *FileStore) Delete(storedName string) bool {
	if storedName == "" {
		return false
	}
	err := os.Remove(filepath.Join(fs.basePath, safeFilename(storedName)))
	return err == nil
}

func (fs *FileStore) BasePath() string {
	return fs.basePath
}

// CoverFilename builds a stored name from the book title plus a short random
// suffix: "clean_architecture_1a2b3c4d.jpg".
func CoverFilename(title, ext string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	slug := strings.Trim(b.String(), "_")
	if len(slug) > 100 {
		slug = slug[:100]
	}
	if slug == "" {
		slug = "cover"
	}
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return slug + "_" + suffix + ext
}

func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return "cover"
	}
	return name
}
