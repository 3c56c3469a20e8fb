package qa

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSessionStore_historyCapped(t *testing.T) {
	s := NewSessionStore()
	id := s.Create()

	for i := 0; i < 15; i++ {
		s.Append(id, fmt.Sprintf("pregunta %d", i), fmt.Sprintf("respuesta %d", i), false)
	}

	history, _, ok := s.Snapshot(id)
	if !ok {
		t.Fatalf("la sesión debió seguir viva")
	}
	if len(history) != sessionMaxHistory {
		t.Fatalf("el historial debe recortarse a %d mensajes, hubo %d", sessionMaxHistory, len(history))
	}
	// Se conservan los turnos más recientes
	last := history[len(history)-1]
	if last.Role != "assistant" || last.Content != "respuesta 14" {
		t.Fatalf("último mensaje inesperado: %+v", last)
	}
	first := history[0]
	if first.Role != "user" || first.Content != "pregunta 5" {
		t.Fatalf("primer mensaje inesperado: %+v", first)
	}
}

func TestSessionStore_expiredSessionPurged(t *testing.T) {
	s := NewSessionStore()
	id := s.Create()

	s.mu.Lock()
	s.sessions[id].lastActivityAt = time.Now().Add(-sessionTTL - time.Minute)
	s.mu.Unlock()

	if _, _, ok := s.Snapshot(id); ok {
		t.Fatalf("una sesión inactiva más de %v debe descartarse", sessionTTL)
	}
	// Append sobre una sesión expirada no debe revivirla
	s.Append(id, "pregunta", "respuesta", false)
	if _, _, ok := s.Snapshot(id); ok {
		t.Fatalf("Append no debe revivir una sesión expirada")
	}
}

func TestSessionStore_greetingFlagSticky(t *testing.T) {
	s := NewSessionStore()
	id := s.Create()

	s.Append(id, "hola", "hola Sofía", true)
	s.Append(id, "¿y la glucosa?", "la glucosa...", false)

	_, greeted, ok := s.Snapshot(id)
	if !ok || !greeted {
		t.Fatalf("el saludo personalizado debe quedar marcado de forma permanente")
	}
}

func TestSessionStore_snapshotIsACopy(t *testing.T) {
	s := NewSessionStore()
	id := s.Create()
	s.Append(id, "pregunta", "respuesta", false)

	history, _, _ := s.Snapshot(id)
	history[0].Content = "mutado"

	again, _, _ := s.Snapshot(id)
	if again[0].Content != "pregunta" {
		t.Fatalf("mutar la copia no debe afectar el estado almacenado")
	}
}

func TestSessionStore_concurrentSnapshotAndAppend(t *testing.T) {
	s := NewSessionStore()
	id := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Append(id, fmt.Sprintf("pregunta %d-%d", n, j), "respuesta", n%2 == 0)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				history, _, ok := s.Snapshot(id)
				if ok && len(history)%2 != 0 {
					t.Errorf("el historial siempre lleva pares pregunta/respuesta, hubo %d", len(history))
					return
				}
			}
		}()
	}
	wg.Wait()

	history, _, ok := s.Snapshot(id)
	if !ok {
		t.Fatalf("la sesión debió seguir viva")
	}
	if len(history) != sessionMaxHistory {
		t.Fatalf("el historial debe quedar en el tope de %d, hubo %d", sessionMaxHistory, len(history))
	}
}
