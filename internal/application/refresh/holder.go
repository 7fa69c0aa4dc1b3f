package refresh

import "sync"

// Holder conserva la última instantánea publicada de un tablero con semántica
// last-completed-wins: cada carga que termina sobrescribe el estado completo,
// sin importar en qué orden arrancaron. Version crece con cada publicación,
// lo que vuelve la carrera observable y determinista para quien la consuma.
type Holder[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	has     bool
}

// NewHolder construye un holder vacío.
func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{}
}

// Set publica una instantánea completa (la carga que completó de última gana).
func (h *Holder[T]) Set(v T) {
	h.mu.Lock()
	h.value = v
	h.version++
	h.has = true
	h.mu.Unlock()
}

// Get devuelve la última instantánea publicada y si existe alguna.
func (h *Holder[T]) Get() (T, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value, h.has
}

// Version devuelve el contador de publicaciones (0 = nunca publicado).
func (h *Holder[T]) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}
