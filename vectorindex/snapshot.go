package vectorindex

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrIndexNotFound indica que aún no existe un índice en disco. El
// llamador debe construirlo (o agregar documentos) antes de consultar.
var ErrIndexNotFound = errors.New("índice no encontrado")

const (
	indexDirName  = "vector_index"
	snapshotName  = "index_evity.json"
	timestampName = "index_ts"
)

// Snapshot es el paquete persistido del índice: tres secuencias alineadas
// (nombres, textos traducidos y embeddings). El elemento i de cada una
// describe el mismo documento fuente.
type Snapshot struct {
	Names      []string    `json:"names"`
	Texts      []string    `json:"texts"`
	Embeddings [][]float32 `json:"embeddings"`
}

// Len devuelve el número de documentos indexados.
func (s *Snapshot) Len() int { return len(s.Names) }

func (ix *Index) snapshotPath() string {
	return filepath.Join(ix.base, indexDirName, snapshotName)
}

func (ix *Index) timestampPath() string {
	return filepath.Join(ix.base, indexDirName, timestampName)
}

// saveSnapshot escribe el snapshot y su timestamp. La escritura del
// bundle es atómica (archivo temporal + rename) para que un rebuild
// nunca deje un índice a medias.
func (ix *Index) saveSnapshot(snap *Snapshot, buildUnix int64) error {
	dir := filepath.Join(ix.base, indexDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, snapshotName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, ix.snapshotPath()); err != nil {
		os.Remove(tmpName)
		return err
	}

	ts := strconv.FormatInt(buildUnix, 10)
	return os.WriteFile(ix.timestampPath(), []byte(ts), 0o644)
}

// Load lee el snapshot desde disco. Devuelve ErrIndexNotFound si nunca
// se ha construido un índice.
func (ix *Index) Load() (*Snapshot, error) {
	data, err := os.ReadFile(ix.snapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, ix.snapshotPath())
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// storedTimestamp devuelve la marca de construcción del índice en
// segundos unix, o 0 si no hay índice. Si el archivo de timestamp está
// dañado se usa el mtime del bundle como aproximación.
func (ix *Index) storedTimestamp() int64 {
	info, err := os.Stat(ix.snapshotPath())
	if err != nil {
		return 0
	}
	raw, err := os.ReadFile(ix.timestampPath())
	if err == nil {
		if ts, perr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64); perr == nil {
			return ts
		}
	}
	return info.ModTime().Unix()
}
