package labs

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"evity-backend/analytes"
	"evity-backend/files"
)

// ErrUnsupportedFileType indica una extensión que el pipeline no sabe
// procesar. Fatal para esa petición.
var ErrUnsupportedFileType = errors.New("tipo de archivo no soportado para labs")

// Techo generoso de tokens de salida para reportes largos.
const maxOutputTokens = 8000

// VisionCompleter es el oráculo multimodal que estructura los reportes.
type VisionCompleter interface {
	CompleteVision(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, maxTokens int) (string, error)
}

// Analyte es un analito extraído de un reporte, ya resuelto contra el
// catálogo y anotado con sus rangos de riesgo.
type Analyte struct {
	Nombre         string   `json:"nombre"`
	Valor          *float64 `json:"valor"`
	Unidad         string   `json:"unidad"`
	Observaciones  *string  `json:"observaciones"`
	RangoNormal    string   `json:"rango_normal,omitempty"`
	RiesgoModerado string   `json:"riesgo_moderado,omitempty"`
	RiesgoElevado  string   `json:"riesgo_elevado,omitempty"`
}

// ParsedDocument es la vista estructurada completa del reporte.
type ParsedDocument struct {
	TipoEstudio       string    `json:"tipo_estudio"`
	NombreEstudio     string    `json:"nombre_estudio,omitempty"`
	NombrePaciente    string    `json:"nombre_paciente,omitempty"`
	NombreLaboratorio string    `json:"nombre_laboratorio,omitempty"`
	FechaEstudio      string    `json:"fecha_estudio,omitempty"`
	Analitos          []Analyte `json:"analitos"`
}

// Biomarker es la vista aplanada de un analito para consumo posterior.
type Biomarker struct {
	Nombre string   `json:"nombre"`
	Valor  *float64 `json:"valor"`
	Unidad string   `json:"unidad"`
}

// Export es la vista de exportación del resultado.
type Export struct {
	TipoEstudio       string      `json:"tipo_estudio"`
	NombreEstudio     string      `json:"nombre_estudio"`
	NombrePaciente    string      `json:"nombre_paciente"`
	NombreLaboratorio string      `json:"nombre_laboratorio"`
	FechaEstudio      string      `json:"fecha_estudio"`
	Biomarcadores     []Biomarker `json:"biomarcadores"`
}

// Result es la respuesta completa de una extracción.
type Result struct {
	Filename       string         `json:"filename"`
	TipoEstudio    string         `json:"tipo_estudio"`
	NombreEstudio  string         `json:"nombre_estudio"`
	Parsed         ParsedDocument `json:"parsed"`
	ExportJSON     Export         `json:"export_json"`
	RawModelOutput string         `json:"raw_model_output"`
}

// modelDocument es la forma que el modelo debe devolver. Valor se decodifica
// como any porque el modelo a veces emite cadenas donde debía ir un número;
// los valores no numéricos se descartan más adelante.
type modelDocument struct {
	TipoEstudio string `json:"tipo_estudio"`
	// Puntero para distinguir clave ausente de cadena vacía: una cadena
	// vacía enviada por el modelo se conserva tal cual.
	NombreEstudio     *string        `json:"nombre_estudio"`
	NombrePaciente    string         `json:"nombre_paciente"`
	NombreLaboratorio string         `json:"nombre_laboratorio"`
	FechaEstudio      string         `json:"fecha_estudio"`
	Analitos          []modelAnalyte `json:"analitos"`
}

type modelAnalyte struct {
	Nombre        string  `json:"nombre"`
	Valor         any     `json:"valor"`
	Unidad        string  `json:"unidad"`
	Observaciones *string `json:"observaciones"`
}

// Pipeline convierte un reporte de laboratorio (PDF o imagen) en
// resultados estructurados validados contra el catálogo.
type Pipeline struct {
	catalog *analytes.Catalog
	ai      VisionCompleter
}

// New crea el pipeline de extracción.
func New(catalog *analytes.Catalog, ai VisionCompleter) *Pipeline {
	return &Pipeline{catalog: catalog, ai: ai}
}

// Extract procesa los bytes de un archivo de laboratorio y devuelve los
// analitos estructurados, corregidos y deduplicados. La salida del modelo
// que no pueda interpretarse degrada a un resultado vacío clasificado
// como documento genérico; nunca falla por JSON malformado.
func (p *Pipeline) Extract(ctx context.Context, fileBytes []byte, filename string) (*Result, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var userMsg openai.ChatCompletionMessage
	switch ext {
	case ".pdf":
		// Los PDF se procesan por su capa de texto, no rasterizados:
		// no hay un rasterizador de PDF en Go puro. Un PDF escaneado
		// sin capa de texto falla aquí con un error explícito.
		pages, err := files.ExtractPDFPages(fileBytes)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer el PDF: %w", err)
		}
		var text strings.Builder
		for _, pg := range pages {
			if strings.TrimSpace(pg) == "" {
				continue
			}
			if text.Len() > 0 {
				text.WriteString("\n\n")
			}
			text.WriteString(pg)
		}
		if text.Len() == 0 {
			return nil, errors.New("no se pudo extraer texto del PDF")
		}
		userMsg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			Content: "Analiza el siguiente texto extraído de un reporte de laboratorio clínico y extrae los analitos:\n\n" +
				text.String(),
		}
	case ".png", ".jpg", ".jpeg":
		mime := "image/png"
		if ext != ".png" {
			mime = "image/jpeg"
		}
		encoded := base64.StdEncoding.EncodeToString(fileBytes)
		userMsg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: "Analiza esta imagen de un reporte de laboratorio clínico y extrae los analitos:",
				},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: "data:" + mime + ";base64," + encoded},
				},
			},
		}
	default:
		if ext == "" {
			ext = "desconocido"
		}
		return nil, fmt.Errorf("%w: %s (usa PDF, JPG o PNG)", ErrUnsupportedFileType, ext)
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: p.extractionPrompt()},
		userMsg,
	}

	raw, err := p.ai.CompleteVision(ctx, messages, 0, maxOutputTokens)
	if err != nil {
		return nil, err
	}

	doc := parseModelOutput(raw)

	// El tipo de estudio se decide con los analitos crudos, antes de
	// resolver contra el catálogo: un reporte cuyos analitos no resuelvan
	// sigue siendo un laboratorio.
	tipoEstudio := doc.TipoEstudio
	if tipoEstudio == "" {
		if len(doc.Analitos) > 0 {
			tipoEstudio = "laboratorio"
		} else {
			tipoEstudio = "estudio_imagen"
		}
	}

	processed := p.reconcileCBC(p.resolveAnalytes(doc.Analitos))

	var nombreEstudio string
	switch {
	case doc.NombreEstudio != nil:
		nombreEstudio = *doc.NombreEstudio
	case len(processed) > 0:
		nombreEstudio = "Estudio de laboratorio"
	default:
		nombreEstudio = "Estudio médico"
	}

	biomarkers := make([]Biomarker, 0, len(processed))
	for _, a := range processed {
		biomarkers = append(biomarkers, Biomarker{Nombre: a.Nombre, Valor: a.Valor, Unidad: a.Unidad})
	}

	return &Result{
		Filename:      filename,
		TipoEstudio:   tipoEstudio,
		NombreEstudio: nombreEstudio,
		Parsed: ParsedDocument{
			TipoEstudio:       tipoEstudio,
			NombreEstudio:     nombreEstudio,
			NombrePaciente:    doc.NombrePaciente,
			NombreLaboratorio: doc.NombreLaboratorio,
			FechaEstudio:      doc.FechaEstudio,
			Analitos:          processed,
		},
		ExportJSON: Export{
			TipoEstudio:       tipoEstudio,
			NombreEstudio:     nombreEstudio,
			NombrePaciente:    doc.NombrePaciente,
			NombreLaboratorio: doc.NombreLaboratorio,
			FechaEstudio:      doc.FechaEstudio,
			Biomarcadores:     biomarkers,
		},
		RawModelOutput: raw,
	}, nil
}

// parseModelOutput interpreta la respuesta del modelo como JSON. Si el
// JSON directo falla se intenta con la primera subcadena {...}; si eso
// también falla se devuelve un documento genérico vacío.
func parseModelOutput(raw string) modelDocument {
	var doc modelDocument
	if json.Unmarshal([]byte(raw), &doc) == nil {
		return doc
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		doc = modelDocument{}
		if json.Unmarshal([]byte(raw[start:end+1]), &doc) == nil {
			return doc
		}
	}
	return modelDocument{TipoEstudio: "documento_medico"}
}

// resolveAnalytes resuelve cada entrada del modelo contra el catálogo y
// la anota con unidad y rangos de riesgo. Las entradas que no resuelven
// a ningún analito conocido se descartan.
func (p *Pipeline) resolveAnalytes(raw []modelAnalyte) []Analyte {
	out := make([]Analyte, 0, len(raw))
	for _, ra := range raw {
		def, ok := p.catalog.Resolve(ra.Nombre)
		if !ok {
			continue
		}
		unit := def.Unit
		if unit == "" {
			unit = ra.Unidad
		}
		out = append(out, Analyte{
			Nombre:         def.Name,
			Valor:          toFloat(ra.Valor),
			Unidad:         unit,
			Observaciones:  ra.Observaciones,
			RangoNormal:    def.Normal,
			RiesgoModerado: def.ModerateRisk,
			RiesgoElevado:  def.HighRisk,
		})
	}
	return out
}

func toFloat(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

// reconcileCBC valida los valores de biometría hemática contra los
// rangos esperados y reasigna los que quedaron mal atribuidos: un valor
// fuera de rango (o duplicado) pasa a un fondo de no asignados y se
// entrega al primer analito libre de la tabla cuyo rango lo contenga.
// Analitos fuera de la tabla se conservan sin validación. La salida
// contiene a lo sumo un registro por nombre canónico.
func (p *Pipeline) reconcileCBC(in []Analyte) []Analyte {
	type pooled struct {
		valor  float64
		unidad string
	}

	corrected := make(map[string]Analyte)
	var order []string
	assigned := make(map[string]bool)
	var pool []pooled

	for _, a := range in {
		if a.Valor == nil {
			continue
		}
		v := *a.Valor
		r, inTable := cbcRange(a.Nombre)
		if !inTable {
			if _, exists := corrected[a.Nombre]; !exists {
				order = append(order, a.Nombre)
			}
			corrected[a.Nombre] = a
			assigned[a.Nombre] = true
			continue
		}
		if r.contains(v) && !assigned[a.Nombre] {
			corrected[a.Nombre] = a
			order = append(order, a.Nombre)
			assigned[a.Nombre] = true
		} else {
			pool = append(pool, pooled{valor: v, unidad: a.Unidad})
		}
	}

	for _, u := range pool {
		best := ""
		for _, r := range cbcValueRanges {
			if assigned[r.Name] {
				continue
			}
			if r.contains(u.valor) {
				best = r.Name
				break
			}
		}
		if best == "" {
			continue
		}
		if _, exists := corrected[best]; exists {
			continue
		}
		def, ok := p.catalog.Resolve(best)
		if !ok {
			continue
		}
		unit := def.Unit
		if unit == "" {
			if r, ok := cbcRange(best); ok && r.TypicalUnit != "" {
				unit = r.TypicalUnit
			} else {
				unit = u.unidad
			}
		}
		v := u.valor
		corrected[best] = Analyte{
			Nombre:         best,
			Valor:          &v,
			Unidad:         unit,
			RangoNormal:    def.Normal,
			RiesgoModerado: def.ModerateRisk,
			RiesgoElevado:  def.HighRisk,
		}
		order = append(order, best)
		assigned[best] = true
	}

	out := make([]Analyte, 0, len(order))
	for _, name := range order {
		out = append(out, corrected[name])
	}
	return out
}
