// Package views mantiene el registro perezoso de plantillas: cada vista se
// parsea la primera vez que alguien la pide y queda cacheada para el resto de
// la vida del proceso. Un error de parseo no se cachea: sube al manejador de
// errores y el siguiente intento vuelve a parsear.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/jhoicas/pos-front/pkg/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Page es el dato raíz que recibe toda plantilla: título, navegación del rol
// y el modelo propio de la vista.
type Page struct {
	Title string
	Nav   any
	Data  any
}

// Registry registro perezoso de plantillas con precarga especulativa.
type Registry struct {
	log *logger.Logger

	mu    sync.Mutex
	cache map[string]*template.Template

	// gen numera las precargas: solo la última solicitada publica su
	// resultado, las anteriores se descartan al completar.
	gen map[string]uint64
}

// NewRegistry construye el registro vacío (ninguna plantilla parseada).
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		log:   log.Component("views"),
		cache: make(map[string]*template.Template),
		gen:   make(map[string]uint64),
	}
}

// lookup devuelve la plantilla cacheada si existe.
func (r *Registry) lookup(name string) (*template.Template, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.cache[name]
	return t, ok
}

// parse compila la vista junto con el layout compartido.
func (r *Registry) parse(name string) (*template.Template, error) {
	t, err := template.ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
	if err != nil {
		return nil, fmt.Errorf("views: parsear %q: %w", name, err)
	}
	return t, nil
}

// Get devuelve la plantilla de la vista, parseándola en el primer uso.
// Mismo nombre, misma instancia: los usos siguientes son un hit de caché.
func (r *Registry) Get(name string) (*template.Template, error) {
	if t, ok := r.lookup(name); ok {
		return t, nil
	}
	t, err := r.parse(name)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Otro goroutine pudo ganar la carrera; conservar la primera instancia.
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}
	r.cache[name] = t
	return t, nil
}

// Prefetch parsea la vista en segundo plano antes de que se navegue a ella.
// Si llegan varias precargas seguidas, solo la última solicitada publica su
// resultado; el fallo de una precarga es silencioso (se reintenta en Get).
func (r *Registry) Prefetch(name string) {
	r.mu.Lock()
	if _, ok := r.cache[name]; ok {
		r.mu.Unlock()
		return
	}
	r.gen[name]++
	myGen := r.gen[name]
	r.mu.Unlock()

	go func() {
		t, err := r.parse(name)
		if err != nil {
			r.log.Warn().Err(err).Str("view", name).Msg("precarga de vista falló")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.gen[name] != myGen {
			return
		}
		if _, ok := r.cache[name]; !ok {
			r.cache[name] = t
		}
	}()
}

// Render ejecuta la vista sobre un buffer y devuelve el HTML completo. El
// buffer intermedio garantiza que un fallo a mitad de ejecución no deje una
// respuesta a medias: o sale la página entera o sube el error.
func (r *Registry) Render(name string, page Page) ([]byte, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return nil, fmt.Errorf("views: ejecutar %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Cached indica si la vista ya está parseada (útil en tests y debug).
func (r *Registry) Cached(name string) bool {
	_, ok := r.lookup(name)
	return ok
}
