package vectorindex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type fakeEmbedder struct {
	calls   int
	batches [][]string
}

func (f *fakeEmbedder) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	f.calls++
	f.batches = append(f.batches, inputs)
	vecs := make([][]float32, len(inputs))
	for i, text := range inputs {
		vecs[i] = []float32{float32(len(text)), 1}
	}
	return vecs, nil
}

type identityNormalizer struct{}

func (identityNormalizer) Normalize(ctx context.Context, text string) string { return text }

func writeDoc(t *testing.T, base, name, text string) string {
	t.Helper()
	dir := filepath.Join(base, "contenidos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuildAndLoad_alignment(t *testing.T) {
	base := t.TempDir()
	writeDoc(t, base, "uno.txt", "primer documento")
	writeDoc(t, base, "dos.txt", "segundo documento más largo")

	ix := New(base, &fakeEmbedder{}, identityNormalizer{})
	if err := ix.Build(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap, err := ix.Load()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Len() != 2 {
		t.Fatalf("se esperaban 2 documentos, hubo %d", snap.Len())
	}
	if len(snap.Names) != len(snap.Texts) || len(snap.Texts) != len(snap.Embeddings) {
		t.Fatalf("secuencias desalineadas: %d/%d/%d", len(snap.Names), len(snap.Texts), len(snap.Embeddings))
	}
	for i := range snap.Names {
		// El embedding falso codifica la longitud del texto: permite
		// verificar que el elemento i de cada secuencia es el mismo doc.
		if snap.Embeddings[i][0] != float32(len(snap.Texts[i])) {
			t.Fatalf("embedding %d no corresponde a su texto", i)
		}
	}
}

func TestBuild_emptyCorpusLeavesStateUntouched(t *testing.T) {
	base := t.TempDir()
	writeDoc(t, base, "uno.txt", "documento")
	ix := New(base, &fakeEmbedder{}, identityNormalizer{})
	if err := ix.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	before, err := os.ReadFile(ix.snapshotPath())
	if err != nil {
		t.Fatal(err)
	}

	// Se vacía el corpus: el build no debe tocar el snapshot previo
	if err := os.Remove(filepath.Join(base, "contenidos", "uno.txt")); err != nil {
		t.Fatal(err)
	}
	if err := ix.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(ix.snapshotPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatalf("un corpus vacío no debe sobreescribir el snapshot")
	}
}

func TestEnsureFresh_rebuildsOnceOnChange(t *testing.T) {
	base := t.TempDir()
	p := writeDoc(t, base, "uno.txt", "documento")
	emb := &fakeEmbedder{}
	ix := New(base, emb, identityNormalizer{})

	// Sin índice y con contenidos: construye
	if err := ix.EnsureFresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if emb.calls != 1 {
		t.Fatalf("se esperaba 1 build, hubo %d llamadas al embedder", emb.calls)
	}

	// Nada cambió: no-op
	if err := ix.EnsureFresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if emb.calls != 1 {
		t.Fatalf("EnsureFresh sin cambios no debe reconstruir (llamadas=%d)", emb.calls)
	}

	// Avanza el mtime del documento más allá del timestamp del índice
	future := time.Now().Add(5 * time.Second)
	if err := os.Chtimes(p, future, future); err != nil {
		t.Fatal(err)
	}
	if err := ix.EnsureFresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if emb.calls != 2 {
		t.Fatalf("se esperaba exactamente un rebuild tras el cambio, llamadas=%d", emb.calls)
	}
}

func TestEnsureFresh_emptyCorpusIsNoop(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "contenidos"), 0o755); err != nil {
		t.Fatal(err)
	}
	emb := &fakeEmbedder{}
	ix := New(base, emb, identityNormalizer{})
	if err := ix.EnsureFresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if emb.calls != 0 {
		t.Fatalf("una carpeta sin contenidos no debe disparar builds")
	}
}

func TestLoad_missingIndex(t *testing.T) {
	ix := New(t.TempDir(), &fakeEmbedder{}, identityNormalizer{})
	_, err := ix.Load()
	if !errors.Is(err, ErrIndexNotFound) {
		t.Fatalf("se esperaba ErrIndexNotFound, fue %v", err)
	}
}

func TestBuild_embedsInBatches(t *testing.T) {
	base := t.TempDir()
	for i := 0; i < embedBatchSize+3; i++ {
		writeDoc(t, base, fmt.Sprintf("doc%03d.txt", i), "texto")
	}
	emb := &fakeEmbedder{}
	ix := New(base, emb, identityNormalizer{})
	if err := ix.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if emb.calls != 2 {
		t.Fatalf("se esperaban 2 lotes, hubo %d", emb.calls)
	}
	if len(emb.batches[0]) != embedBatchSize || len(emb.batches[1]) != 3 {
		t.Fatalf("tamaños de lote inesperados: %d, %d", len(emb.batches[0]), len(emb.batches[1]))
	}
}

func TestRank_ordering(t *testing.T) {
	snap := &Snapshot{
		Names: []string{"a", "b", "c"},
		Texts: []string{"a", "b", "c"},
		Embeddings: [][]float32{
			{0, 1},
			{1, 0},
			{0.7, 0.7},
		},
	}
	matches := Rank([]float32{1, 0}, snap, 5)
	if len(matches) != 3 {
		t.Fatalf("k mayor que el corpus debe truncarse a %d, hubo %d", 3, len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatalf("scores fuera de orden: %v", matches)
		}
	}
	if matches[0].Index != 1 {
		t.Fatalf("el documento más similar debería ser el 1, fue %d", matches[0].Index)
	}

	if got := Rank([]float32{1, 0}, snap, 2); len(got) != 2 {
		t.Fatalf("Rank debe truncar a k resultados, hubo %d", len(got))
	}
}

func TestCosine_selfSimilarity(t *testing.T) {
	v := []float32{0.3, -0.5, 0.81}
	if got := Cosine(v, v); math.Abs(got-1.0) > 1e-6 {
		t.Fatalf("cos(v, v) = %v, se esperaba 1.0", got)
	}
	if got := Cosine([]float32{0, 0}, []float32{0, 0}); got != 0 {
		t.Fatalf("vectores nulos deben dar 0, fue %v", got)
	}
}
