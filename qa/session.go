package qa

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// session guarda el estado de una conversación del chatbot: historial y
// si ya se envió el saludo personalizado. Solo el almacén toca estos
// campos; los llamadores reciben copias vía Snapshot.
type session struct {
	history                 []Message
	hasSentPersonalGreeting bool
	lastActivityAt          time.Time
}

// Las conversaciones inactivas se descartan tras un día; el historial se
// recorta a los últimos 20 mensajes para no crecer sin límite.
const (
	sessionTTL        = 24 * time.Hour
	sessionMaxHistory = 20
)

// SessionStore es el almacén en memoria de conversaciones. Vive en la
// capa HTTP; el agente en sí no guarda estado de conversación. Todas las
// lecturas y escrituras pasan por el mutex: gin atiende peticiones
// concurrentes y dos /ask con el mismo conversationId pueden cruzarse.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessionStore crea un almacén de conversaciones vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session)}
}

// Create abre una conversación nueva y devuelve su identificador.
func (s *SessionStore) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	id := "conv_" + uuid.NewString()
	s.sessions[id] = &session{lastActivityAt: time.Now()}
	return id
}

// Snapshot devuelve una copia del historial y la bandera de saludo de la
// conversación, si sigue viva. La copia puede leerse sin el candado.
func (s *SessionStore) Snapshot(id string) ([]Message, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false, false
	}
	history := make([]Message, len(sess.history))
	copy(history, sess.history)
	return history, sess.hasSentPersonalGreeting, true
}

// Append registra un turno de pregunta/respuesta en la conversación y
// actualiza la bandera de saludo personalizado. Si la conversación ya
// expiró no hace nada.
func (s *SessionStore) Append(id, question, answer string, greetedByName bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	sess.history = append(sess.history,
		Message{Role: "user", Content: question},
		Message{Role: "assistant", Content: answer},
	)
	if greetedByName {
		sess.hasSentPersonalGreeting = true
	}
	if len(sess.history) > sessionMaxHistory {
		sess.history = sess.history[len(sess.history)-sessionMaxHistory:]
	}
	sess.lastActivityAt = time.Now()
}

func (s *SessionStore) purgeLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, sess := range s.sessions {
		if sess.lastActivityAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
