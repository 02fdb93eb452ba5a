package service

import (
	"errors"
	"fmt"
	"go-social-api/logger"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var (
	ErrFileTooLarge = errors.New("file exceeds the upload limit")
	ErrEmptyFile    = errors.New("file is empty")
)

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/public/"

// FileService stores uploaded files under a single directory and hands back
// the public URL of each one.
type FileService struct {
	fs      afero.Fs
	dir     string
	baseURL string
	maxSize int64
}

func NewFileService(fs afero.Fs, dir, baseURL string, maxSize int64) *FileService {
	return &FileService{
		fs:      fs,
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSize,
	}
}

// Save writes the content of r under a new random name and returns its URL.
// The extension is taken from originalName, or from the detected content type
// when the name has none.
func (s *FileService) Save(originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if int64(len(data)) > s.maxSize {
		return "", ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if ext == "" || ext == "." {
		ext = mtype.Extension()
	}
	name := uuid.NewString() + ext

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"file":      name,
		"mime_type": mtype.String(),
		"size":      len(data),
	}).Info("File uploaded")
	return s.baseURL + path.Join(PublicPrefix, name), nil
}

// FileSystem exposes the upload directory for static serving.
func (s *FileService) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir(s.dir)
}
