package analyses

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moussa101/Skillora/internal/extract"
	"github.com/moussa101/Skillora/internal/language"
	"github.com/moussa101/Skillora/internal/shared/server/respond"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

var allowedExtensions = []string{".pdf", ".docx", ".txt"}

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/analyze-file", h.analyzeFile)
	rg.POST("/ats-score", h.atsScore)
	rg.POST("/extract-text", h.extractText)
	rg.GET("/languages", h.languages)
}

func (h *Handler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText and jobDescription are required", nil)
		return
	}

	result := h.Svc.AnalyzeText(c.Request.Context(), req.ResumeText, req.JobDescription, req.Language)
	respond.OK(c, result)
}

func (h *Handler) analyzeFile(c *gin.Context) {
	jobDescription := c.PostForm("jobDescription")
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobDescription form field is required", nil)
		return
	}

	text, _, ok := h.readUpload(c)
	if !ok {
		return
	}
	if len(strings.TrimSpace(text)) < 10 {
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "Could not extract text from file", nil)
		return
	}

	result := h.Svc.AnalyzeText(c.Request.Context(), text, jobDescription, "")
	respond.OK(c, result)
}

func (h *Handler) atsScore(c *gin.Context) {
	var req ATSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText and jobDescription are required", nil)
		return
	}

	result := h.Svc.ScoreATS(c.Request.Context(), req.ResumeText, req.JobDescription)
	respond.OK(c, result)
}

func (h *Handler) extractText(c *gin.Context) {
	text, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	respond.OK(c, ExtractResult{
		Filename: filename,
		Text:     text,
		Length:   len(text),
		Status:   "success",
	})
}

func (h *Handler) languages(c *gin.Context) {
	respond.OK(c, gin.H{"languages": language.Supported()})
}

// readUpload validates and extracts the "file" multipart part. On failure it
// writes the error response and returns ok=false.
func (h *Handler) readUpload(c *gin.Context) (text, filename string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return "", "", false
	}
	filename = fileHeader.Filename

	ext := strings.ToLower(filepath.Ext(filename))
	if !extensionAllowed(ext) {
		respond.Error(c, http.StatusBadRequest, "unsupported_type",
			"Unsupported file type. Allowed: "+strings.Join(allowedExtensions, ", "), nil)
		return "", "", false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10 MB limit", nil)
		return "", "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read uploaded file", nil)
		return "", "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read uploaded file", nil)
		return "", "", false
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 10 MB limit", nil)
		return "", "", false
	}

	text, err = extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusBadRequest, "unsupported_type",
				"Unsupported file type. Allowed: "+strings.Join(allowedExtensions, ", "), nil)
			return "", "", false
		}
		respond.Error(c, http.StatusInternalServerError, "extraction_failed", "Failed to extract text: "+err.Error(), nil)
		return "", "", false
	}
	return text, filename, true
}

func extensionAllowed(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
