package translate

import (
	"context"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Completer es la porción del cliente de OpenAI que necesita el
// normalizador, para poder sustituirla en pruebas.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error)
}

const systemInstruction = "Detecta el idioma del mensaje del usuario. " +
	"Si está en inglés, tradúcelo al español conservando el significado. " +
	"Si ya está en español, regrésalo igual. " +
	"Devuelve solo el texto resultante, sin comentarios."

// Normalizer uniforma el idioma de los textos antes de indexarlos:
// detecta el idioma con el modelo y traduce al español cuando hace falta.
type Normalizer struct {
	ai Completer
}

// New crea un normalizador sobre el oráculo de completions dado.
func New(ai Completer) *Normalizer {
	return &Normalizer{ai: ai}
}

// Normalize devuelve el texto traducido al español. Se envía el texto
// completo al modelo para que la traducción cubra todo el documento.
// Ante cualquier fallo del oráculo se devuelve el texto original sin
// cambios: aquí se prefiere degradar a fallar.
func (n *Normalizer) Normalize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	out, err := n.ai.Complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
		{Role: openai.ChatMessageRoleUser, Content: text},
	}, 0)
	if err != nil {
		log.Printf("[trans] error traduciendo: %v", err)
		return text
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}
