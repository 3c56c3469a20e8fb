package qa

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"evity-backend/vectorindex"
)

// Cantidad máxima de documentos inyectados como contexto en el prompt,
// independiente de k.
const maxContextDocs = 3

// Cantidad de turnos de historial que se incluyen en el prompt.
const maxHistoryTurns = 6

// Oracle reúne los dos oráculos que necesita el compositor de
// respuestas: embeddings para la consulta y completions para responder.
type Oracle interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error)
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// Message es un turno de conversación tal como lo envía el frontend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationContext es el estado de conversación que acompaña una
// pregunta. Lo aporta completo el llamador; el agente no lo almacena.
type ConversationContext struct {
	UserName           string
	History            []Message
	HasGreetedBefore   bool
	MessageHasGreeting bool
}

// Agent responde preguntas de pacientes usando el índice local.
type Agent struct {
	index *vectorindex.Index
	ai    Oracle
}

// NewAgent crea el agente de preguntas y respuestas.
func NewAgent(index *vectorindex.Index, ai Oracle) *Agent {
	return &Agent{index: index, ai: ai}
}

// Rebuild fuerza la reconstrucción completa del índice.
func (a *Agent) Rebuild(ctx context.Context) error {
	return a.index.Build(ctx)
}

// Answer responde una pregunta con tono empático, fundamentada en los
// documentos más relevantes del índice. Reconstruye el índice si los
// contenidos cambiaron. Los fallos del oráculo se propagan al llamador.
func (a *Agent) Answer(ctx context.Context, question string, conv ConversationContext, k int) (string, error) {
	if k <= 0 {
		k = 5
	}
	if err := a.index.EnsureFresh(ctx); err != nil {
		return "", err
	}
	snap, err := a.index.Load()
	if err != nil {
		return "", err
	}

	vecs, err := a.ai.Embed(ctx, []string{question})
	if err != nil {
		return "", err
	}
	matches := vectorindex.Rank(vecs[0], snap, k)
	for _, m := range matches {
		log.Printf("[qa] contexto relevante: (%.3f) %s", m.Score, snap.Names[m.Index])
	}

	var contexts []string
	for i, m := range matches {
		if i >= maxContextDocs {
			break
		}
		contexts = append(contexts, snap.Texts[m.Index])
	}

	out, err := a.ai.Complete(ctx, composeMessages(question, strings.Join(contexts, "\n\n"), conv), 0.5)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// composeMessages arma la conversación para el modelo: instrucción de
// sistema con la persona de Evity y la política de saludo, los últimos
// turnos de historial y el mensaje del usuario con el contexto.
func composeMessages(question, contexto string, conv ConversationContext) []openai.ChatCompletionMessage {
	var sys strings.Builder
	sys.WriteString(
		"Eres Evity, un profesional de la salud empático y claro. " +
			"Explicas temas médicos con palabras sencillas, sin jerga técnica, " +
			"y ofreces orientación útil y tranquilizadora. " +
			"Responde de forma breve. " +
			"Si hay términos médicos, explícalos brevemente. " +
			"Nunca prometas curas y sugiere consultar a un profesional de salud si es necesario. ")

	switch {
	case conv.MessageHasGreeting && !conv.HasGreetedBefore && conv.UserName != "":
		sys.WriteString(fmt.Sprintf(
			"El usuario te saludó y aún no lo has saludado en esta conversación: "+
				"salúdalo por su nombre (%s) una sola vez al inicio de tu respuesta y no vuelvas a saludar después. ", conv.UserName))
	case conv.HasGreetedBefore:
		sys.WriteString("Ya saludaste al usuario en esta conversación: no vuelvas a saludar. ")
	case !conv.MessageHasGreeting:
		sys.WriteString("El mensaje del usuario no contiene un saludo: omite los saludos por completo y comienza con una frase de transición neutral. ")
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: sys.String()},
	}

	history := conv.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	user := "Usa el siguiente contexto de documentos para responder a la pregunta " +
		"de forma breve, amable y comprensible.\n\n" +
		"Contexto:\n" + contexto + "\n\n" +
		"Pregunta: " + question + "\n\n" +
		"Incluye: 1) una explicación sencilla, 2) consejos o pasos prácticos, " +
		"3) cuándo consultar a un médico. " +
		"Termina con la frase: 'Esto no sustituye una consulta médica profesional.'"
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})
	return messages
}
