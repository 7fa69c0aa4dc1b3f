package backend

import (
	"encoding/json"
	"fmt"
)

// El backend responde con sobres heterogéneos según el endpoint: a veces el
// recurso viene directo en el cuerpo, a veces envuelto en {"data": ...} y a
// veces doblemente envuelto en {"data": {"data": ...}}. La normalización
// prefiere el nivel más interno disponible y, si el cuerpo no trae nada
// utilizable, devuelve el valor cero del tipo destino.

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// unwrap devuelve el payload más interno del sobre: data.data si la clave
// existe, si no data, si no el cuerpo completo. Una clave data presente pero
// nula significa "sin contenido" y degrada a vacío.
func unwrap(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	var outer struct {
		Data *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &outer); err != nil || outer.Data == nil {
		return body
	}
	d := *outer.Data
	if isNull(d) {
		return nil
	}
	var inner struct {
		Data *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(d, &inner); err == nil && inner.Data != nil {
		if isNull(*inner.Data) {
			return nil
		}
		return *inner.Data
	}
	return d
}

// decodeList decodifica una lista normalizada. Un sobre vacío o nulo produce
// una lista vacía, nunca un error.
func decodeList[T any](body []byte) ([]T, error) {
	payload := unwrap(body)
	if len(payload) == 0 || string(payload) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("backend: decodificar lista: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decodeObject decodifica un objeto normalizado. Un sobre vacío o nulo
// produce el valor cero del tipo.
func decodeObject[T any](body []byte) (T, error) {
	var out T
	payload := unwrap(body)
	if len(payload) == 0 || string(payload) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("backend: decodificar objeto: %w", err)
	}
	return out, nil
}
