package qa

import (
	"regexp"
	"strings"
)

// Admite puntuación invertida y espacios antes del saludo: ¡Hola!, ¿Qué tal?
var greetingPattern = regexp.MustCompile(`(?i)^[¡!¿?\s]*(hola|buenos días|buenas tardes|buenas noches|qué tal|hey|saludos|buen día)`)

// ContainsGreeting detecta si el mensaje comienza con un saludo.
func ContainsGreeting(message string) bool {
	return greetingPattern.MatchString(strings.TrimSpace(message))
}
