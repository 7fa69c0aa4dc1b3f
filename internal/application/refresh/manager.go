package refresh

import (
	"context"
	"sync"
	"time"
)

// Manager administra un scheduler por clave de montaje (tenant+usuario) con
// conteo de referencias: el primer montaje arranca el ciclo, el último
// desmontaje lo detiene. Remontar no acumula ciclos duplicados.
//
// El beacon de desmontaje del cliente puede perderse (cierre abrupto de la
// pestaña, bfcache, móvil), así que cada montaje lleva además un vencimiento
// ligado a la sesión que lo pidió: un ciclo cuyo vencimiento ya pasó no
// dispara más cargas y se libera solo en el siguiente tick.
type Manager struct {
	interval time.Duration

	mu        sync.Mutex
	entries   map[string]*entry
	onRelease func(key string)
}

type entry struct {
	sched    *Scheduler
	refs     int
	deadline time.Time // cero = sin vencimiento
}

// extend adopta el vencimiento más lejano; cero significa sin vencimiento.
func (e *entry) extend(deadline time.Time) {
	if e.deadline.IsZero() {
		return
	}
	if deadline.IsZero() || deadline.After(e.deadline) {
		e.deadline = deadline
	}
}

// NewManager construye el manager con el intervalo de refresco global.
func NewManager(interval time.Duration) *Manager {
	return &Manager{interval: interval, entries: make(map[string]*entry)}
}

// OnRelease registra el callback invocado con la clave cada vez que un ciclo
// se libera del todo, por el último desmontaje o por vencimiento. Los
// consumidores lo usan para soltar el estado asociado a la clave. Debe
// registrarse antes del primer montaje.
func (m *Manager) OnRelease(fn func(key string)) {
	m.mu.Lock()
	m.onRelease = fn
	m.mu.Unlock()
}

// Mount registra un montaje de la vista identificada por key, con el
// vencimiento de la sesión que lo pide (cero = sin vencimiento). Si es el
// primero, arranca un scheduler que ejecuta fn de inmediato y luego a cada
// intervalo. Remontar una clave viva suma una referencia y prorroga el
// vencimiento.
func (m *Manager) Mount(ctx context.Context, key string, deadline time.Time, fn func(ctx context.Context)) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok {
		e.refs++
		e.extend(deadline)
		m.mu.Unlock()
		return
	}
	e := &entry{refs: 1, deadline: deadline}
	e.sched = NewScheduler(m.interval, func(ctx context.Context) {
		// Un beacon perdido no debe dejar el ciclo vivo para siempre: con el
		// vencimiento pasado esta carga no se dispara y el ciclo se libera.
		if m.expired(key, e) {
			go m.evict(key, e)
			return
		}
		fn(ctx)
	})
	m.entries[key] = e
	m.mu.Unlock()

	e.sched.Start(ctx)
}

// Extend prorroga el vencimiento de un ciclo vivo: cada sondeo del cliente
// reafirma que su sesión sigue activa. Clave sin ciclo: no-op.
func (m *Manager) Extend(key string, deadline time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[key]; ok {
		e.extend(deadline)
	}
}

func (m *Manager) expired(key string, e *entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries[key] != e {
		return false
	}
	return !e.deadline.IsZero() && time.Now().After(e.deadline)
}

// evict retira un ciclo vencido. Corre en su propia goroutine porque Stop
// espera a la goroutine del scheduler, que es quien detectó el vencimiento.
func (m *Manager) evict(key string, e *entry) {
	m.mu.Lock()
	if m.entries[key] != e {
		m.mu.Unlock()
		return
	}
	delete(m.entries, key)
	released := m.onRelease
	m.mu.Unlock()

	e.sched.Stop()
	if released != nil {
		released(key)
	}
}

// Unmount libera un montaje. Al llegar a cero referencias el ciclo se detiene
// y, al volver, no se dispara ninguna carga más para esa clave.
func (m *Manager) Unmount(key string) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		m.mu.Unlock()
		return
	}
	e.refs--
	if e.refs > 0 {
		m.mu.Unlock()
		return
	}
	delete(m.entries, key)
	released := m.onRelease
	m.mu.Unlock()

	// Stop espera el drenaje fuera del lock para no bloquear otros montajes.
	e.sched.Stop()
	if released != nil {
		released(key)
	}
}

// Active indica si hay un ciclo vivo para la clave (útil en tests y debug).
func (m *Manager) Active(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

// StopAll detiene todos los ciclos (apagado del servidor).
func (m *Manager) StopAll() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.sched.Stop()
	}
}
