package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-front/internal/domain/entity"
)

const warehouseSnapshotPrefix = "snapshot:warehouses:"

// SnapshotCache conserva por sesión la lista de magasins leída al montar la
// pantalla de aprovisionamiento. El TTL es corto: el dato solo debe
// sobrevivir a los cambios de pestaña dentro del mismo montaje, no volverse
// una caché de larga vida.
type SnapshotCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewSnapshotCache construye la caché con el TTL de instantánea.
func NewSnapshotCache(rdb redis.UniversalClient, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

func warehouseSnapshotKey(sessionID string) string {
	return warehouseSnapshotPrefix + sessionID
}

// SaveWarehouses publica la instantánea completa de la sesión. Una lista
// vacía también se guarda: significa "ya cargué y no hay magasins", no
// "nunca cargué".
func (c *SnapshotCache) SaveWarehouses(ctx context.Context, sessionID string, list []entity.Warehouse) error {
	if list == nil {
		list = []entity.Warehouse{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("redisstore: serializar instantánea: %w", err)
	}
	if err := c.rdb.Set(ctx, warehouseSnapshotKey(sessionID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redisstore: guardar instantánea: %w", err)
	}
	return nil
}

// GetWarehouses devuelve la instantánea y si existía. La ausencia no es
// error: indica que toca cargar desde el backend.
func (c *SnapshotCache) GetWarehouses(ctx context.Context, sessionID string) ([]entity.Warehouse, bool, error) {
	data, err := c.rdb.Get(ctx, warehouseSnapshotKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redisstore: leer instantánea: %w", err)
	}
	var list []entity.Warehouse
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, false, fmt.Errorf("redisstore: deserializar instantánea: %w", err)
	}
	return list, true, nil
}
