package labs

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter(out string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	p, _ := newPipeline(out)
	NewHandler(p).RegisterRoutes(r)
	return r
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestOCR_multipartOK(t *testing.T) {
	r := setupRouter(`{"tipo_estudio":"laboratorio","nombre_estudio":"QUIMICA SANGUINEA","analitos":[{"nombre":"Glucosa","valor":92,"unidad":"mg/dL","observaciones":null}]}`)

	body, contentType := multipartUpload(t, "file", "reporte.png", []byte("fake png"))
	req := httptest.NewRequest(http.MethodPost, "/labs/ocr", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var result Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Filename != "reporte.png" {
		t.Fatalf("filename inesperado: %s", result.Filename)
	}
	if len(result.Parsed.Analitos) != 1 || result.Parsed.Analitos[0].Nombre != "Glucosa" {
		t.Fatalf("analitos inesperados: %+v", result.Parsed.Analitos)
	}
}

func TestOCR_rawBodyWithHeaderFilename(t *testing.T) {
	r := setupRouter(`{"tipo_estudio":"laboratorio","analitos":[]}`)

	req := httptest.NewRequest(http.MethodPost, "/labs/ocr", bytes.NewReader([]byte("fake jpg")))
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Filename", "reporte.jpg")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
}

func TestOCR_missingFileField(t *testing.T) {
	r := setupRouter("")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("otro", "valor")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/labs/ocr", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperaba 400, fue %d", w.Code)
	}
}

func TestOCR_emptyBody(t *testing.T) {
	r := setupRouter("")

	req := httptest.NewRequest(http.MethodPost, "/labs/ocr", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/octet-stream")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperaba 400, fue %d", w.Code)
	}
}

func TestOCR_unsupportedExtensionBadRequest(t *testing.T) {
	r := setupRouter("")

	body, contentType := multipartUpload(t, "file", "reporte.docx", []byte("datos"))
	req := httptest.NewRequest(http.MethodPost, "/labs/ocr", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperaba 400 por extensión desconocida, fue %d", w.Code)
	}
}
