package api

import (
	"errors"
	"net/http"

	"pcstore-be/internal/transport"
	"pcstore-be/internal/upload"
)

const multipartOverhead = 1 << 20

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(upload.MaxFileSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, upload.ErrTooLarge)
			return
		}
		transport.WriteError(w, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, r, upload.ErrNoFile)
		return
	}
	defer file.Close()

	url, err := h.Uploads.Save(r.Context(), header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
