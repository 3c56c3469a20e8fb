package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"evity-backend/analytes"
	"evity-backend/labs"
	"evity-backend/openai"
	"evity-backend/qa"
	"evity-backend/translate"
	"evity-backend/vectorindex"
)

func main() {
	_ = godotenv.Load()

	base := os.Getenv("AGENT_BASE_DIR")
	if base == "" {
		base = "."
	}

	ai := openai.NewClient()
	catalog := analytes.Default()
	index := vectorindex.New(base, ai, translate.New(ai))
	agent := qa.NewAgent(index, ai)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "evity-qa-agent"})
	})

	qa.NewHandler(agent).RegisterRoutes(r)
	labs.NewHandler(labs.New(catalog, ai)).RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	log.Printf("[main] iniciando API del agente en puerto %s (carpeta base: %s)", port, base)
	r.Run(":" + port)
}
