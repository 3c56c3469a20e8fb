package labs

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler expone el pipeline de extracción por HTTP.
type Handler struct {
	pipeline *Pipeline
}

// NewHandler crea el handler de laboratorios.
func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// RegisterRoutes registra los endpoints de laboratorios.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/labs/ocr", h.OCR)
}

// OCR recibe un reporte de laboratorio (multipart con campo "file" o
// cuerpo binario con cabecera X-Filename) y devuelve el resultado
// estructurado.
func (h *Handler) OCR(c *gin.Context) {
	data, filename, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "archivo vacío"})
		return
	}

	result, err := h.pipeline.Extract(c.Request.Context(), data, filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[labs] error procesando %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error procesando el archivo de laboratorio",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func readUpload(c *gin.Context) ([]byte, string, error) {
	ct := c.GetHeader("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		upFile, err := c.FormFile("file")
		if err != nil {
			return nil, "", errors.New("se requiere el campo 'file'")
		}
		f, err := upFile.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, "", err
		}
		return data, upFile.Filename, nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, "", err
	}
	filename := c.GetHeader("X-Filename")
	if filename == "" {
		filename = c.Query("filename")
	}
	return data, filename, nil
}
