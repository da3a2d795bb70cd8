package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxFileSize = 5 << 20
	URLPrefix   = "/uploads/"
)

var (
	ErrUnsupportedType = errors.New("Only .jpg, .jpeg, .png and .webp images are allowed.")
	ErrTooLarge        = errors.New("File exceeds the 5 MB limit.")
	ErrNoFile          = errors.New("No file uploaded.")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Store writes uploaded images to a local directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save copies at most MaxFileSize bytes of src into a uuid-named file
// and returns its public URL.
func (s *Store) Save(ctx context.Context, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(dst, io.LimitReader(src, MaxFileSize+1))
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && n > MaxFileSize {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	logger.FromCtx(ctx).Info("file uploaded",
		zap.String("file", name),
		zap.Int64("bytes", n),
	)
	return URLPrefix + name, nil
}

// FileSystem serves stored files but never directories, so the upload
// directory cannot be listed.
func (s *Store) FileSystem() http.FileSystem {
	return filesOnly{http.Dir(s.dir)}
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
