package files

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Document es un documento de la carpeta de contenidos listo para indexar.
type Document struct {
	Name string
	Text string
}

// Collect lee los .txt y .pdf dentro de dir y devuelve los documentos en
// orden: primero los .txt (alfabético), luego los .pdf. Los problemas de
// lectura se registran y el archivo se omite; una carpeta inexistente
// devuelve una lista vacía.
func Collect(dir string) []Document {
	var docs []Document
	if _, err := os.Stat(dir); err != nil {
		log.Printf("[warn] no existe carpeta: %s", dir)
		return docs
	}

	txts, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
	for _, p := range txts {
		raw, err := os.ReadFile(p)
		if err != nil {
			log.Printf("[txt] error leyendo %s: %v", filepath.Base(p), err)
			continue
		}
		text := strings.ToValidUTF8(string(raw), "�")
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, Document{Name: filepath.Base(p), Text: text})
	}

	pdfs, _ := filepath.Glob(filepath.Join(dir, "*.pdf"))
	for _, p := range pdfs {
		raw, err := os.ReadFile(p)
		if err != nil {
			log.Printf("[pdf] error leyendo %s: %v", filepath.Base(p), err)
			continue
		}
		text, err := ExtractPDFText(raw)
		if err != nil || strings.TrimSpace(text) == "" {
			log.Printf("[pdf] PDF vacío o sin texto: %s", filepath.Base(p))
			continue
		}
		docs = append(docs, Document{Name: filepath.Base(p), Text: text})
	}

	log.Printf("[info] documentos cargados desde %s: %d", dir, len(docs))
	return docs
}

// LatestMtime devuelve la fecha de modificación más reciente entre los
// .txt y .pdf de la carpeta, o el tiempo cero si no hay archivos.
func LatestMtime(dir string) time.Time {
	var latest time.Time
	for _, pattern := range []string{"*.txt", "*.pdf"} {
		matches, _ := filepath.Glob(filepath.Join(dir, pattern))
		for _, p := range matches {
			info, err := os.Stat(p)
			if err != nil {
				continue
			}
			if info.ModTime().After(latest) {
				latest = info.ModTime()
			}
		}
	}
	return latest
}
