// Package backend implementa los gateways hacia el API REST del backend.
// Toda petición sale con bearer token y cabecera de tenant; las respuestas
// pasan por la normalización de sobre antes de decodificarse.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

// HTTPClient es el subconjunto de http.Client que usa el cliente.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client cliente HTTP hacia el backend.
type Client struct {
	base   *url.URL
	client HTTPClient
}

// NewClient construye el cliente. baseURL es la raíz del API (ej.
// https://api.ejemplo.com/api).
func NewClient(baseURL string, client HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("backend: base URL requerida")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("backend: base URL inválida: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{base: parsed, client: client}, nil
}

// get emite un GET autenticado y devuelve el cuerpo crudo.
func (c *Client) get(ctx context.Context, auth gateway.Auth, endpoint string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, auth)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// put emite un PUT autenticado con cuerpo JSON y devuelve el cuerpo crudo.
func (c *Client) put(ctx context.Context, auth gateway.Auth, endpoint string, payload any) ([]byte, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("backend: codificar payload: %w", err)
		}
	}
	req, err := c.newRequest(ctx, http.MethodPut, endpoint, &buf, auth)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader, auth gateway.Auth) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("backend: construir petición: %w", err)
	}
	// Credenciales obligatorias en toda petición saliente.
	if auth.Token != "" {
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	}
	if auth.TenantID != "" {
		req.Header.Set("X-Tenant-ID", auth.TenantID)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend: petición falló: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.errorFromResponse(resp)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<22))
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta: %w", err)
	}
	return body, nil
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	base := *c.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}

// APIError error del backend con el mensaje del servidor cuando existe.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend: error %d", e.StatusCode)
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Code: payload.Code, Message: payload.Message}
		}
	}
	return &APIError{StatusCode: resp.StatusCode}
}

// ServerMessage devuelve el mensaje del backend si el error lo trae, o "" si no.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
