package upload_media

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/content"
)

const formField = "file"

const (
	msgUnknownCollection = "неизвестная коллекция"
	msgInvalidForm       = "ожидается multipart форма с полем file"
	msgFileTooLarge      = "файл слишком большой"
	msgEmptyFile         = "файл пустой"
	msgMediaDisabled     = "загрузка медиафайлов отключена"
	msgUploadFailed      = "не удалось загрузить файл, попробуйте ещё раз"
)

type Handler struct {
	service  ContentService
	maxBytes int64
	logger   Logger
}

// NewHandler maxBytes ограничивает размер тела запроса
func NewHandler(service ContentService, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/media/{collection}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collection, err := content.ParseCollection(mux.Vars(r)["collection"])
	if err != nil {
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	if r.ContentLength > h.maxBytes {
		h.logger.Warn("POST /admin/media/{collection} - File too large: %d bytes, limit=%d", r.ContentLength, h.maxBytes)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, header, err := r.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("POST /admin/media/{collection} - File too large: limit=%d", h.maxBytes)
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		h.logger.Warn("POST /admin/media/{collection} - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Warn("POST /admin/media/{collection} - Failed to read file: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.service.UploadMedia(r.Context(), collection, header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrMediaDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMediaDisabled)

		case errors.Is(err, content.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgEmptyFile)

		case errors.Is(err, content.ErrUpload):
			h.logger.Error("POST /admin/media/{collection} - Upload failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /admin/media/{collection} - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
