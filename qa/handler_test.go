package qa

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"evity-backend/vectorindex"
)

type mockOracle struct {
	answer string
}

func (m *mockOracle) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error) {
	return m.answer, nil
}

func (m *mockOracle) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	vecs := make([][]float32, len(inputs))
	for i := range inputs {
		vecs[i] = []float32{1, 0}
	}
	return vecs, nil
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func newTestHandler(t *testing.T, withDocs bool) *Handler {
	t.Helper()
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "contenidos"), 0o755); err != nil {
		t.Fatal(err)
	}
	if withDocs {
		p := filepath.Join(base, "contenidos", "glucosa.txt")
		if err := os.WriteFile(p, []byte("La glucosa es un azúcar en la sangre."), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ai := &mockOracle{answer: "La glucosa es importante. Esto no sustituye una consulta médica profesional."}
	index := vectorindex.New(base, ai, identityNorm{})
	return NewHandler(NewAgent(index, ai))
}

type identityNorm struct{}

func (identityNorm) Normalize(ctx context.Context, text string) string { return text }

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAsk_ok(t *testing.T) {
	h := newTestHandler(t, true)
	r := setupRouter(h)

	w := postJSON(t, r, "/ask", map[string]any{"question": "¿qué es la glucosa?"})
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, fue %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Answer   string `json:"answer"`
		Question string `json:"question"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json inválido: %v", err)
	}
	if resp.Answer == "" {
		t.Fatalf("falta answer")
	}
	if resp.Question != "¿qué es la glucosa?" {
		t.Fatalf("question inesperada: %q", resp.Question)
	}
}

func TestAsk_emptyQuestion(t *testing.T) {
	h := newTestHandler(t, true)
	r := setupRouter(h)

	w := postJSON(t, r, "/ask", map[string]any{"question": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("se esperaba 400, fue %d", w.Code)
	}
}

func TestAsk_noIndexYields404(t *testing.T) {
	h := newTestHandler(t, false)
	r := setupRouter(h)

	w := postJSON(t, r, "/ask", map[string]any{"question": "¿qué es la glucosa?"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("sin índice se esperaba 404, fue %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("contenidos")) {
		t.Fatalf("el error debe indicar agregar documentos: %s", w.Body.String())
	}
}

func TestAsk_sessionTracksGreeting(t *testing.T) {
	h := newTestHandler(t, true)
	r := setupRouter(h)

	w := postJSON(t, r, "/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, fue %d", w.Code)
	}
	var sess struct {
		ConversationID string `json:"conversationId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
		t.Fatal(err)
	}

	w = postJSON(t, r, "/ask", map[string]any{
		"question":       "Hola, ¿qué es la glucosa?",
		"conversationId": sess.ConversationID,
		"userName":       "Sofía",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, fue %d: %s", w.Code, w.Body.String())
	}

	history, greeted, ok := h.sessions.Snapshot(sess.ConversationID)
	if !ok {
		t.Fatalf("la sesión debió conservarse")
	}
	if !greeted {
		t.Fatalf("tras un saludo con nombre debe marcarse el saludo personalizado")
	}
	if len(history) != 2 {
		t.Fatalf("el historial debe llevar pregunta y respuesta, hubo %d", len(history))
	}
}

func TestRebuildIndex_ok(t *testing.T) {
	h := newTestHandler(t, true)
	r := setupRouter(h)

	w := postJSON(t, r, "/rebuild-index", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("se esperaba 200, fue %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("reconstruido")) {
		t.Fatalf("respuesta inesperada: %s", w.Body.String())
	}
}
