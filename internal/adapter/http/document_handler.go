package http

import (
	"net/http"
	"strings"

	"loan-marketplace/internal/usecase/document"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	uc  *document.Usecase
	log *zap.Logger
}

func NewDocumentHandler(uc *document.Usecase, log *zap.Logger) *DocumentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentHandler{uc: uc, log: log}
}

// Upload expects multipart/form-data with the file under "file".
func (h *DocumentHandler) Upload(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer f.Close()

	doc, err := h.uc.Upload(c.Request().Context(), userID, document.UploadInput{
		DocType:     strings.ToLower(c.Param("doc_type")),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "File uploaded successfully",
		"document": doc,
	})
}

func (h *DocumentHandler) List(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	docs, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"documents": docs})
}
