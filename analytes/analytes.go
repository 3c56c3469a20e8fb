package analytes

import "strings"

// Definition describe un analito de laboratorio con su unidad y
// los rangos de referencia por nivel de riesgo. Los campos de riesgo
// pueden estar vacíos cuando no hay un rango definido.
type Definition struct {
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	Normal       string `json:"normal"`
	ModerateRisk string `json:"moderate_risk,omitempty"`
	HighRisk     string `json:"high_risk,omitempty"`
}

// Catalog es la tabla de referencia de analitos. Se construye una vez
// al inicio del proceso y no se modifica después. El orden de los
// analitos se conserva tal como fueron declarados para que la búsqueda
// parcial sea reproducible.
type Catalog struct {
	defs     []Definition
	byName   map[string]int
	synonyms map[string]string
}

// NewCatalog construye un catálogo a partir de definiciones ordenadas y
// un mapa de sinónimos (alias en minúsculas -> nombre canónico).
func NewCatalog(defs []Definition, synonyms map[string]string) *Catalog {
	byName := make(map[string]int, len(defs))
	for i, d := range defs {
		byName[d.Name] = i
	}
	return &Catalog{defs: defs, byName: byName, synonyms: synonyms}
}

// Default devuelve el catálogo predefinido de Evity.
func Default() *Catalog {
	return NewCatalog(predefinedAnalytes, analyteSynonyms)
}

// Resolve busca un analito por nombre:
// 1) coincidencia exacta con el nombre canónico,
// 2) sinónimo (insensible a mayúsculas, con espacios recortados),
// 3) coincidencia parcial (subcadena en cualquier dirección), gana la
// primera según el orden de declaración del catálogo.
func (c *Catalog) Resolve(name string) (Definition, bool) {
	if i, ok := c.byName[name]; ok {
		return c.defs[i], true
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := c.synonyms[lower]; ok {
		if i, ok := c.byName[canonical]; ok {
			return c.defs[i], true
		}
	}

	for _, d := range c.defs {
		dl := strings.ToLower(d.Name)
		if strings.Contains(dl, lower) || strings.Contains(lower, dl) {
			return d, true
		}
	}

	return Definition{}, false
}

// Names devuelve los nombres canónicos en orden de declaración.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}

// Len devuelve el número de analitos en el catálogo.
func (c *Catalog) Len() int { return len(c.defs) }

// Synonyms expone el mapa de sinónimos (solo lectura por convención).
func (c *Catalog) Synonyms() map[string]string { return c.synonyms }
