package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const defaultVideoExt = ".mp4"

type StorageService interface {
	SaveTemp(file *multipart.FileHeader) (*TempFile, error)
	EnsureTempDir() error
}

// TempFile is an upload buffered to disk for the lifetime of one request.
// Callers must defer Release as soon as SaveTemp returns.
type TempFile struct {
	Path string
	Size int64

	once       sync.Once
	releaseErr error
}

// Release removes the file. Calling it more than once is safe.
func (t *TempFile) Release() error {
	t.once.Do(func() {
		if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
			t.releaseErr = fmt.Errorf("failed to delete temp file: %w", err)
		}
	})
	return t.releaseErr
}

type storageService struct {
	tempDir string
}

func NewStorageService(tempDir string) StorageService {
	return &storageService{
		tempDir: tempDir,
	}
}

func (s *storageService) EnsureTempDir() error {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveTemp(file *multipart.FileHeader) (*TempFile, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = defaultVideoExt
	}

	uniqueFilename := fmt.Sprintf("interview_%s%s", uuid.New().String(), ext)
	tmp := &TempFile{Path: filepath.Join(s.tempDir, uniqueFilename)}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(tmp.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	n, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		return nil, discardPartial(tmp, copyErr)
	}
	if closeErr != nil {
		return nil, discardPartial(tmp, closeErr)
	}

	tmp.Size = n
	return tmp, nil
}

// discardPartial removes a partially written upload and reports the save
// failure together with any cleanup failure.
func discardPartial(tmp *TempFile, cause error) error {
	err := fmt.Errorf("failed to save file: %w", cause)
	if releaseErr := tmp.Release(); releaseErr != nil {
		return errors.Join(err, releaseErr)
	}
	return err
}
