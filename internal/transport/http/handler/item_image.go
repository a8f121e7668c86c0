package handler

import (
	"errors"
	"net/http"

	"github.com/game-admin-api/internal/application/itemimage"
)

// multipart overhead allowed on top of the file itself
const formSlack = 1 << 20

type ItemImageHandler struct {
	svc itemimage.Service
}

func NewItemImageHandler(svc itemimage.Service) *ItemImageHandler {
	return &ItemImageHandler{svc: svc}
}

// Upload accepts a multipart form with the image in field "file".
func (h *ItemImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if r.ContentLength > itemimage.MaxSize+formSlack {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds 10 MiB")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, itemimage.MaxSize+formSlack)
	if err := r.ParseMultipartForm(itemimage.MaxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file exceeds 10 MiB")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if header.Size > itemimage.MaxSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds 10 MiB")
		return
	}

	item, err := h.svc.Upload(r.Context(), itemimage.UploadInput{
		ItemID:      id,
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
