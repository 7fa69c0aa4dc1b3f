// Package redisstore implementa los puertos de persistencia local sobre
// Redis: sesiones y la instantánea de magasins del contenedor de pestañas.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

const sessionPrefix = "session:"

// SessionStore guarda sesiones serializadas en Redis con TTL acoplado a la
// expiración del token.
type SessionStore struct {
	rdb        redis.UniversalClient
	defaultTTL time.Duration
}

// NewSessionStore construye el store. defaultTTL aplica cuando la sesión no
// trae expiración propia.
func NewSessionStore(rdb redis.UniversalClient, defaultTTL time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, defaultTTL: defaultTTL}
}

func sessionKey(id string) string { return sessionPrefix + id }

// Save serializa la sesión completa. Reescribir la misma clave reemplaza el
// estado entero, lo que mantiene la semántica de escritor único.
func (s *SessionStore) Save(ctx context.Context, sess entity.Session) error {
	if sess.ID == "" {
		return errors.New("redisstore: sesión sin ID")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redisstore: serializar sesión: %w", err)
	}
	ttl := s.defaultTTL
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt)
		if ttl <= 0 {
			return fmt.Errorf("redisstore: sesión %s ya expirada", sess.ID)
		}
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redisstore: guardar sesión: %w", err)
	}
	return nil
}

// Get recupera la sesión. Devuelve gateway.ErrSessionNotFound si no existe,
// el TTL venció o la sesión almacenada ya está expirada.
func (s *SessionStore) Get(ctx context.Context, id string) (entity.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, gateway.ErrSessionNotFound
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("redisstore: leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return entity.Session{}, fmt.Errorf("redisstore: deserializar sesión: %w", err)
	}
	if sess.Expired() {
		return entity.Session{}, gateway.ErrSessionNotFound
	}
	return sess, nil
}

// Delete elimina la sesión. Borrar una sesión inexistente no es error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redisstore: borrar sesión: %w", err)
	}
	return nil
}
