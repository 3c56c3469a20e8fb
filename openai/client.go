package openai

import (
	"context"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Client envuelve la API de OpenAI con los tres oráculos que usa el
// agente: completions de chat, completions con visión y embeddings.
type Client struct {
	api         *openai.Client
	ChatModel   string
	VisionModel string
	EmbedModel  string
}

// NewClient crea el cliente a partir de variables de entorno. Los modelos
// pueden sobreescribirse con QA_CHAT_MODEL, LABS_VISION_MODEL y
// QA_EMBED_MODEL.
func NewClient() *Client {
	key := os.Getenv("OPENAI_API_KEY")
	return &Client{
		api:         openai.NewClient(key),
		ChatModel:   envOr("QA_CHAT_MODEL", "gpt-4o-mini"),
		VisionModel: envOr("LABS_VISION_MODEL", "gpt-4o"),
		EmbedModel:  envOr("QA_EMBED_MODEL", "text-embedding-3-small"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Complete envía una conversación al modelo de chat y devuelve el texto
// de la primera respuesta.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.ChatModel,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteVision envía una conversación (posiblemente multimodal) al
// modelo con visión. maxTokens limita la longitud de la salida.
func (c *Client) CompleteVision(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.VisionModel,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed devuelve un vector por cada texto de entrada, en el mismo orden.
func (c *Client) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.EmbedModel),
		Input: inputs,
	})
	if err != nil {
		return nil, err
	}
	vecs := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		idx := d.Index
		if idx < 0 || idx >= len(vecs) {
			idx = i
		}
		vecs[idx] = d.Embedding
	}
	return vecs, nil
}
