// Package refresh implementa el ciclo de refresco periódico de los tableros:
// mientras una vista está montada su rutina de carga se reejecuta a intervalo
// fijo, y el desmontaje cancela el ciclo de forma determinista.
package refresh

import (
	"context"
	"sync"
	"time"
)

// Scheduler reejecuta fn cada interval hasta Stop. Garantías:
//   - fn corre una vez inmediatamente al arrancar (la carga del montaje) y
//     luego en cada tick;
//   - tras volver de Stop no se dispara ninguna ejecución más;
//   - Start y Stop son idempotentes.
type Scheduler struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewScheduler construye el scheduler. interval debe ser > 0.
func NewScheduler(interval time.Duration, fn func(ctx context.Context)) *Scheduler {
	return &Scheduler{interval: interval, fn: fn}
}

// Start arranca el ciclo. Llamadas repetidas sin Stop intermedio no acumulan
// ciclos: el segundo Start es un no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started = true

	go s.run(runCtx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.fn(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Revalidar antes de ejecutar: un Stop entre el tick y aquí
			// no debe producir una carga tardía.
			select {
			case <-ctx.Done():
				return
			default:
			}
			s.fn(ctx)
		}
	}
}

// Stop cancela el ciclo y espera a que la goroutine termine: al volver, cero
// ejecuciones futuras de fn.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.started = false
	s.cancel = nil
	s.mu.Unlock()

	cancel()
	<-done
}
