package handler

import (
	"errors"
	"go-social-api/common"
	"go-social-api/service"
	"net/http"
)

type FileHandler struct {
	service *service.FileService
	maxSize int64
}

func NewFileHandler(s *service.FileService, maxSize int64) *FileHandler {
	return &FileHandler{service: s, maxSize: maxSize}
}

// UploadFile godoc
// @Summary      Upload a file
// @Description  Stores the file under a random name and returns its public URL.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Success      200  {object}  common.Envelope{data=map[string]string}
// @Failure      400  {object}  common.Envelope "Missing or oversized file"
// @Router       /file [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) *common.AppError {
	// Room for the multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return toAppError(service.ErrFileTooLarge, "")
		}
		return common.NewAppError(http.StatusBadRequest, "No file uploaded", nil)
	}
	defer file.Close()

	url, err := h.service.Save(header.Filename, file)
	if err != nil {
		return toAppError(err, "Could not store file")
	}
	common.Success(w, http.StatusOK, map[string]string{"url": url})
	return nil
}
