package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(newTestService())
	handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(AnalyzeRequest{
		ResumeText:     "Experienced python and docker engineer working on cloud systems.",
		JobDescription: "We need python and docker experience.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of range: %v", result.Score)
	}
	if result.Language.Code == "" {
		t.Fatal("missing language info")
	}
}

func TestAnalyzeEndpointRejectsMissingFields(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"resumeText":"only one field"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation_error") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestATSScoreEndpoint(t *testing.T) {
	r := newTestRouter()

	body, _ := json.Marshal(ATSRequest{
		ResumeText:     "Skills:\npython, docker\n\nExperience:\nBuilt services.",
		JobDescription: "python and docker role",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ats-score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	for _, key := range []string{"overallScore", "categories", "criticalIssues", "suggestions", "keywordMatchRate"} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
}

func TestLanguagesEndpoint(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"en"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(fileContent)); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestExtractTextEndpoint(t *testing.T) {
	r := newTestRouter()

	body, contentType := multipartBody(t, nil, "file", "resume.txt", "plain resume content")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract-text", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result ExtractResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if result.Text != "plain resume content" {
		t.Fatalf("text = %q", result.Text)
	}
	if result.Filename != "resume.txt" || result.Status != "success" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Length != len("plain resume content") {
		t.Fatalf("length = %d", result.Length)
	}
}

func TestExtractTextEndpointRejectsExtension(t *testing.T) {
	r := newTestRouter()

	body, contentType := multipartBody(t, nil, "file", "photo.png", "not a resume")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract-text", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unsupported_type") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestAnalyzeFileEndpoint(t *testing.T) {
	r := newTestRouter()

	body, contentType := multipartBody(t,
		map[string]string{"jobDescription": "python and docker role"},
		"file", "resume.txt",
		"Engineer with python and docker experience across many production projects.")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result AnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(result.SkillsFound) == 0 {
		t.Fatalf("expected skills in %+v", result)
	}
}

func TestAnalyzeFileEndpointRequiresJobDescription(t *testing.T) {
	r := newTestRouter()

	body, contentType := multipartBody(t, nil, "file", "resume.txt", "some resume text")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeFileEndpointRejectsTinyText(t *testing.T) {
	r := newTestRouter()

	body, contentType := multipartBody(t,
		map[string]string{"jobDescription": "role"},
		"file", "resume.txt", "tiny")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-file", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "extraction_failed") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
