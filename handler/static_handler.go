package handler

import (
	"errors"
	"go-social-api/common"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

// PublicFiles serves single uploaded files from root. Directories are never
// listed and responses carry headers that stop browsers from sniffing or
// running the content.
func PublicFiles(root http.FileSystem) func(http.ResponseWriter, *http.Request) *common.AppError {
	return func(w http.ResponseWriter, r *http.Request) *common.AppError {
		name := path.Clean("/" + strings.TrimPrefix(r.URL.Path, "/public/"))
		if name == "/" {
			return common.NewAppError(http.StatusNotFound, "File not found", nil)
		}

		f, err := root.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return common.NewAppError(http.StatusNotFound, "File not found", nil)
			}
			return common.NewAppError(http.StatusInternalServerError, "Failed to read file", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return common.NewAppError(http.StatusInternalServerError, "Failed to read file", err)
		}
		if info.IsDir() {
			return common.NewAppError(http.StatusNotFound, "File not found", nil)
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "sandbox")
		if !inlineSafe(path.Ext(name)) {
			w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": info.Name()}))
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
		return nil
	}
}

// inlineSafe reports whether files with ext may be shown in the browser.
func inlineSafe(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".mp4", ".webm", ".mp3", ".txt", ".pdf":
		return true
	}
	return false
}
