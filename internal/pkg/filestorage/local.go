package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prabal/classhub/internal/pkg/logger"
)

// Storage binds an uploaded payload to a durable retrievable URL.
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
}

// LocalStorage saves uploaded files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory on disk; baseURL is the public URL the directory is served at.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile writes the uploaded file to disk under a collision-free name and
// returns the URL it can be retrieved at. The stored name combines a
// nanosecond creation timestamp and a random component, so concurrent
// uploads of files with identical client names never collide.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d_%s%s",
		time.Now().UnixNano(),
		uuid.New().String(),
		filepath.Ext(fileHeader.Filename),
	)

	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file so no half-saved payload is
		// left behind.
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessibleURL := strings.TrimRight(ls.baseURL, "/") + "/" + storedName

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", storedName).
		Str("url", accessibleURL).
		Msg("File saved")
	return accessibleURL, nil
}
