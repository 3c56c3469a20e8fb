package vectorindex

import (
	"context"
	"log"
	"math"
	"path/filepath"
	"sort"
	"time"

	"evity-backend/files"
)

const embedBatchSize = 50

// Embedder es el oráculo de embeddings que usa el índice.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// Normalizer uniforma el idioma de un documento antes de indexarlo.
type Normalizer interface {
	Normalize(ctx context.Context, text string) string
}

// Index mantiene el índice vectorial del agente sobre la carpeta base:
// lee documentos de <base>/contenidos y persiste el snapshot en
// <base>/vector_index.
type Index struct {
	base  string
	embed Embedder
	norm  Normalizer
}

// New crea un índice sobre la carpeta base dada.
func New(base string, embed Embedder, norm Normalizer) *Index {
	return &Index{base: base, embed: embed, norm: norm}
}

// ContentDir devuelve la carpeta de contenidos del índice.
func (ix *Index) ContentDir() string {
	return filepath.Join(ix.base, "contenidos")
}

// Build reconstruye el índice completo: lee los documentos, los traduce,
// genera embeddings por lotes y reemplaza el snapshot anterior de forma
// atómica. Si no hay documentos no se escribe nada y el estado previo
// queda intacto.
func (ix *Index) Build(ctx context.Context) error {
	docs := files.Collect(ix.ContentDir())
	if len(docs) == 0 {
		log.Printf("[index] no hay documentos para indexar")
		return nil
	}

	names := make([]string, 0, len(docs))
	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
		texts = append(texts, ix.norm.Normalize(ctx, d.Text))
	}

	embeddings := make([][]float32, 0, len(texts))
	for i := 0; i < len(texts); i += embedBatchSize {
		end := i + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}
		vecs, err := ix.embed.Embed(ctx, texts[i:end])
		if err != nil {
			return err
		}
		embeddings = append(embeddings, vecs...)
	}

	snap := &Snapshot{Names: names, Texts: texts, Embeddings: embeddings}
	if err := ix.saveSnapshot(snap, time.Now().Unix()); err != nil {
		return err
	}
	log.Printf("[index] guardado índice con %d documentos en %s", len(texts), filepath.Join(ix.base, indexDirName))
	return nil
}

// EnsureFresh reconstruye el índice cuando los contenidos cambiaron
// después de la última construcción, o cuando hay contenidos pero aún no
// existe índice. Una carpeta sin contenidos nunca dispara un rebuild.
func (ix *Index) EnsureFresh(ctx context.Context) error {
	latest := files.LatestMtime(ix.ContentDir())
	if latest.IsZero() {
		return nil
	}
	if latest.Unix() > ix.storedTimestamp() {
		log.Printf("[index] cambios detectados en 'contenidos/', reconstruyendo índice")
		return ix.Build(ctx)
	}
	return nil
}

// Match es un documento recuperado: su posición en el snapshot y la
// similitud coseno con la consulta.
type Match struct {
	Index int
	Score float64
}

// Rank ordena los documentos del snapshot por similitud coseno con el
// vector de consulta, de mayor a menor, y trunca a k resultados. Los
// empates conservan el orden original del snapshot.
func Rank(query []float32, snap *Snapshot, k int) []Match {
	matches := make([]Match, len(snap.Embeddings))
	for i, emb := range snap.Embeddings {
		matches[i] = Match{Index: i, Score: Cosine(query, emb)}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if k < len(matches) {
		matches = matches[:k]
	}
	return matches
}

// Cosine calcula la similitud coseno entre dos vectores. El denominador
// lleva un épsilon para no dividir entre cero con vectores nulos.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		na += float64(v) * float64(v)
	}
	for _, v := range b {
		nb += float64(v) * float64(v)
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + 1e-12)
}
