package refresh_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-front/internal/application/refresh"
)

// waitFor espera hasta que cond sea verdadera o venza el plazo.
func waitFor(t *testing.T, cond func() bool, timeout time.Duration, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, cond(), msg)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Scheduler
// ──────────────────────────────────────────────────────────────────────────────

// La carga del montaje corre de inmediato, antes del primer tick.
func TestScheduler_EjecutaInmediatoAlArrancar(t *testing.T) {
	var runs int64
	s := refresh.NewScheduler(time.Hour, func(context.Context) { atomic.AddInt64(&runs, 1) })
	s.Start(context.Background())
	defer s.Stop()

	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 1 }, time.Second,
		"la primera ejecución no debe esperar al intervalo")
}

// Tras Stop no se dispara ninguna ejecución más.
func TestScheduler_StopDetieneDeFormaDeterminista(t *testing.T) {
	var runs int64
	s := refresh.NewScheduler(10*time.Millisecond, func(context.Context) { atomic.AddInt64(&runs, 1) })
	s.Start(context.Background())

	waitFor(t, func() bool { return atomic.LoadInt64(&runs) >= 2 }, time.Second, "debe refrescar al menos una vez")
	s.Stop()

	after := atomic.LoadInt64(&runs)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&runs), "tras Stop el contador debe congelarse")
}

// Start repetido sin Stop intermedio no acumula ciclos.
func TestScheduler_StartIdempotente(t *testing.T) {
	var runs int64
	s := refresh.NewScheduler(20*time.Millisecond, func(context.Context) { atomic.AddInt64(&runs, 1) })
	s.Start(context.Background())
	s.Start(context.Background())
	s.Start(context.Background())

	waitFor(t, func() bool { return atomic.LoadInt64(&runs) >= 1 }, time.Second, "debe correr al menos una vez")
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// Con un solo ciclo a 20ms, ~70ms permiten como mucho 4-5 ejecuciones;
	// tres ciclos duplicados habrían producido el triple.
	assert.LessOrEqual(t, atomic.LoadInt64(&runs), int64(6), "Start repetido no debe duplicar el ciclo")
}

// Stop sin Start previo es un no-op seguro.
func TestScheduler_StopSinStart(t *testing.T) {
	s := refresh.NewScheduler(time.Second, func(context.Context) {})
	assert.NotPanics(t, func() { s.Stop() })
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Holder — last-completed-wins
// ──────────────────────────────────────────────────────────────────────────────

func TestHolder_LaUltimaPublicacionGana(t *testing.T) {
	h := refresh.NewHolder[string]()

	_, ok := h.Get()
	assert.False(t, ok, "holder recién creado está vacío")
	assert.Zero(t, h.Version())

	h.Set("primera")
	h.Set("segunda")

	v, ok := h.Get()
	assert.True(t, ok)
	assert.Equal(t, "segunda", v)
	assert.Equal(t, uint64(2), h.Version())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Manager — conteo de referencias por clave de montaje
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_PrimerMontajeArrancaUltimoDetiene(t *testing.T) {
	var runs int64
	m := refresh.NewManager(10 * time.Millisecond)
	fn := func(context.Context) { atomic.AddInt64(&runs, 1) }

	m.Mount(context.Background(), "t1:u1", time.Time{}, fn)
	require.True(t, m.Active("t1:u1"))
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) >= 1 }, time.Second, "el montaje debe cargar de inmediato")

	// Segundo montaje de la misma clave: misma instancia, sin ciclo extra.
	m.Mount(context.Background(), "t1:u1", time.Time{}, fn)

	m.Unmount("t1:u1")
	assert.True(t, m.Active("t1:u1"), "con una referencia viva el ciclo sigue")

	m.Unmount("t1:u1")
	assert.False(t, m.Active("t1:u1"))

	after := atomic.LoadInt64(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&runs), "tras el último desmontaje no hay más cargas")
}

// Desmontar una clave nunca montada es inofensivo.
func TestManager_UnmountSinMount(t *testing.T) {
	m := refresh.NewManager(time.Second)
	assert.NotPanics(t, func() { m.Unmount("fantasma") })
}

// Claves distintas tienen ciclos independientes.
func TestManager_ClavesIndependientes(t *testing.T) {
	m := refresh.NewManager(time.Hour)
	m.Mount(context.Background(), "t1:u1", time.Time{}, func(context.Context) {})
	m.Mount(context.Background(), "t1:u2", time.Time{}, func(context.Context) {})

	m.Unmount("t1:u1")
	assert.False(t, m.Active("t1:u1"))
	assert.True(t, m.Active("t1:u2"))

	m.StopAll()
	assert.False(t, m.Active("t1:u2"))
}

// Remontar tras desmontar vuelve a cargar (nuevo ciclo).
func TestManager_RemontarReinicia(t *testing.T) {
	var runs int64
	m := refresh.NewManager(time.Hour)
	fn := func(context.Context) { atomic.AddInt64(&runs, 1) }

	m.Mount(context.Background(), "k", time.Time{}, fn)
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 1 }, time.Second, "primera carga")
	m.Unmount("k")

	m.Mount(context.Background(), "k", time.Time{}, fn)
	defer m.StopAll()
	waitFor(t, func() bool { return atomic.LoadInt64(&runs) == 2 }, time.Second, "el remontaje dispara su propia carga")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Manager — vencimiento ligado a la sesión
// ──────────────────────────────────────────────────────────────────────────────

// Un beacon de desmontaje perdido no deja el ciclo vivo: al pasar el
// vencimiento de la sesión el ciclo se libera solo y las cargas se congelan.
func TestManager_VencimientoLiberaSinBeacon(t *testing.T) {
	var runs int64
	m := refresh.NewManager(10 * time.Millisecond)
	defer m.StopAll()

	m.Mount(context.Background(), "t1:u1", time.Now().Add(30*time.Millisecond),
		func(context.Context) { atomic.AddInt64(&runs, 1) })
	// Dos montajes sin ningún desmontaje, como dos visitas a la página.
	m.Mount(context.Background(), "t1:u1", time.Now().Add(30*time.Millisecond),
		func(context.Context) { atomic.AddInt64(&runs, 1) })

	waitFor(t, func() bool { return !m.Active("t1:u1") }, time.Second,
		"el ciclo debe liberarse al vencer la sesión aunque nunca llegue el beacon")

	after := atomic.LoadInt64(&runs)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&runs), "tras el vencimiento no hay más cargas")
}

// Extend prorroga el vencimiento mientras el cliente sigue sondeando.
func TestManager_ExtendProrrogaElVencimiento(t *testing.T) {
	m := refresh.NewManager(5 * time.Millisecond)
	defer m.StopAll()

	m.Mount(context.Background(), "t1:u1", time.Now().Add(20*time.Millisecond), func(context.Context) {})
	m.Extend("t1:u1", time.Now().Add(10*time.Second))

	time.Sleep(100 * time.Millisecond)
	assert.True(t, m.Active("t1:u1"), "un ciclo prorrogado no debe vencer")
}

// Extend sobre una clave sin ciclo es inofensivo.
func TestManager_ExtendSinMount(t *testing.T) {
	m := refresh.NewManager(time.Second)
	assert.NotPanics(t, func() { m.Extend("fantasma", time.Now().Add(time.Hour)) })
}

// OnRelease avisa tanto en el último desmontaje como en el vencimiento.
func TestManager_OnReleaseNotificaLaLiberacion(t *testing.T) {
	released := make(chan string, 2)
	m := refresh.NewManager(10 * time.Millisecond)
	defer m.StopAll()
	m.OnRelease(func(key string) { released <- key })

	m.Mount(context.Background(), "beacon", time.Time{}, func(context.Context) {})
	m.Unmount("beacon")

	select {
	case key := <-released:
		assert.Equal(t, "beacon", key)
	case <-time.After(time.Second):
		t.Fatal("el desmontaje debe notificar la liberación")
	}

	m.Mount(context.Background(), "vencido", time.Now().Add(20*time.Millisecond), func(context.Context) {})

	select {
	case key := <-released:
		assert.Equal(t, "vencido", key)
	case <-time.After(time.Second):
		t.Fatal("el vencimiento debe notificar la liberación")
	}
	assert.False(t, m.Active("vencido"))
}
