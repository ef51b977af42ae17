package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"legalsummary-backend/models"
	"legalsummary-backend/service"
	"legalsummary-backend/storage"

	"github.com/gin-gonic/gin"
)

const (
	errNoDocument    = "No document provided"
	errNoDocumentKey = "No document key provided"
)

// SummaryHandler handles HTTP requests for document summaries
type SummaryHandler struct {
	summaryService *service.SummaryService
	storage        storage.Storage
	maxFileSize    int64
}

// NewSummaryHandler creates a new summary handler. store may be nil.
func NewSummaryHandler(summaryService *service.SummaryService, store storage.Storage) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		storage:        store,
		maxFileSize:    10 * 1024 * 1024, // 10MB
	}
}

// HasStorage reports whether a document store is configured
func (h *SummaryHandler) HasStorage() bool {
	return h.storage != nil
}

// Summarize handles POST /summarize
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req models.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Document == "" {
		respondError(c, http.StatusBadRequest, errNoDocument)
		return
	}

	h.summarize(c, req.Document)
}

// SummarizeUpload handles POST /summarize/upload
func (h *SummaryHandler) SummarizeUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, errNoDocument)
		return
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return
	}

	if !isTextFile(fileHeader.Header.Get("Content-Type"), fileHeader.Filename) {
		respondError(c, http.StatusBadRequest, "File type not allowed. Allowed types: TXT")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer file.Close()

	document, err := h.readDocument(file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if document == "" {
		respondError(c, http.StatusBadRequest, errNoDocument)
		return
	}

	h.summarize(c, document)
}

// SummarizeStored handles POST /summarize/stored
func (h *SummaryHandler) SummarizeStored(c *gin.Context) {
	if h.storage == nil {
		respondError(c, http.StatusNotFound, "Document storage is not configured")
		return
	}

	var req models.StoredSummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Key == "" {
		respondError(c, http.StatusBadRequest, errNoDocumentKey)
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), req.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer reader.Close()

	document, err := h.readDocument(reader)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if document == "" {
		respondError(c, http.StatusBadRequest, errNoDocument)
		return
	}

	h.summarize(c, document)
}

// summarize runs the service and always answers 200; a failed summary
// carries its message in the payload's error key.
func (h *SummaryHandler) summarize(c *gin.Context, document string) {
	requestID := c.GetString(requestIDKey)
	log.Printf("[%s] Summarizing document (%d bytes)", requestID, len(document))

	result := h.summaryService.Summarize(c.Request.Context(), service.SummarizeRequest{
		Document: document,
	})

	if result.Failed() {
		log.Printf("[%s] Summary failed: %s", requestID, result.Error)
	} else {
		log.Printf("[%s] Summary: %v", requestID, result.Extraction.Map())
	}

	c.JSON(http.StatusOK, result.Payload())
}

// readDocument reads at most maxFileSize bytes
func (h *SummaryHandler) readDocument(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, h.maxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if int64(len(data)) > h.maxFileSize {
		return "", fmt.Errorf("document exceeds maximum of %d bytes", h.maxFileSize)
	}
	return string(data), nil
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Error: message})
}

// isTextFile accepts text/* uploads, inferring the type from the extension when absent
func isTextFile(contentType, filename string) bool {
	if contentType == "" || contentType == "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(filename))
		if ext == ".txt" {
			contentType = "text/plain"
		} else {
			contentType = mime.TypeByExtension(ext)
		}
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/")
}
