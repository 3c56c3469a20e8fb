package files

import (
	"bytes"
	"errors"
	"regexp"
	"strings"

	pdf "rsc.io/pdf"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankRuns    = regexp.MustCompile(`\n{3,}`)
)

// ExtractPDFPages devuelve el texto extraído de cada página del PDF.
// Páginas sin capa de texto producen cadenas vacías.
func ExtractPDFPages(data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	total := r.NumPage()
	pages := make([]string, 0, total)
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		var buf bytes.Buffer
		content := p.Content()
		for _, t := range content.Text {
			buf.WriteString(t.S)
		}
		pages = append(pages, buf.String())
	}
	return pages, nil
}

// ExtractPDFText concatena el texto de todas las páginas y normaliza
// los espacios: corridas de espacios horizontales a uno solo y tres o
// más saltos de línea a exactamente dos.
func ExtractPDFText(data []byte) (string, error) {
	pages, err := ExtractPDFPages(data)
	if err != nil {
		return "", err
	}
	var nonEmpty []string
	for _, p := range pages {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return "", errors.New("pdf sin capa de texto")
	}
	return NormalizeWhitespace(strings.Join(nonEmpty, "\n")), nil
}

// NormalizeWhitespace colapsa espacios horizontales repetidos y corridas
// de líneas en blanco, y recorta los extremos.
func NormalizeWhitespace(text string) string {
	text = horizontalWS.ReplaceAllString(text, " ")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
