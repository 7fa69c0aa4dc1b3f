package usecase

import (
	"context"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// ProcurementUseCase arma la página de aprovisionamiento: una sola carga de
// magasins por montaje, partición gros/detail y pestaña activa según el rol.
type ProcurementUseCase struct {
	warehouses gateway.WarehouseGateway
	cache      gateway.SnapshotCache
	log        *logger.Logger
}

// NewProcurementUseCase construye el caso de uso.
func NewProcurementUseCase(wg gateway.WarehouseGateway, cache gateway.SnapshotCache, log *logger.Logger) *ProcurementUseCase {
	return &ProcurementUseCase{warehouses: wg, cache: cache, log: log.Component("procurement")}
}

// Load monta el contenedor: consulta los magasins una vez, guarda la
// instantánea para los cambios de pestaña y arma el modelo de vista. Un fallo
// de lectura degrada a lista vacía (los sub-views muestran "no configurado"),
// nunca se propaga.
func (uc *ProcurementUseCase) Load(ctx context.Context, sess entity.Session, auth gateway.Auth, tab entity.TabID) dto.ProcurementView {
	list, err := uc.warehouses.List(ctx, auth)
	if err != nil {
		uc.log.Error().Err(err).Str("tenant", auth.TenantID).Msg("carga de magasins falló, se degrada a vacío")
		list = nil
	} else {
		if cacheErr := uc.cache.SaveWarehouses(ctx, sess.ID, list); cacheErr != nil {
			uc.log.Warn().Err(cacheErr).Msg("no se pudo guardar la instantánea de magasins")
		}
	}
	return uc.buildView(sess.User.Role, tab, list, err == nil)
}

// SwitchTab sirve un cambio de pestaña desde la instantánea del montaje, sin
// volver a consultar el backend. Si la instantánea expiró, recarga.
func (uc *ProcurementUseCase) SwitchTab(ctx context.Context, sess entity.Session, auth gateway.Auth, tab entity.TabID) dto.ProcurementView {
	list, ok, err := uc.cache.GetWarehouses(ctx, sess.ID)
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura de instantánea de magasins falló")
	}
	if !ok {
		return uc.Load(ctx, sess, auth, tab)
	}
	return uc.buildView(sess.User.Role, tab, list, true)
}

func (uc *ProcurementUseCase) buildView(role string, tab entity.TabID, list []entity.Warehouse, loaded bool) dto.ProcurementView {
	if tab != entity.TabGros && tab != entity.TabDetail {
		tab = DefaultTab(role)
	}
	gros, detail := uc.partition(list)
	return dto.ProcurementView{
		ActiveTab: tab,
		Gros:      toWarehouseCard(gros),
		Detail:    toWarehouseCard(detail),
		Loaded:    loaded,
	}
}

// partition toma el primer magasin de cada tipo. Si hay duplicados gana el
// primero y se deja constancia en el log (ambigüedad heredada del origen de
// datos, observable en vez de silenciosa).
func (uc *ProcurementUseCase) partition(list []entity.Warehouse) (gros, detail *entity.Warehouse) {
	for i := range list {
		switch list[i].Type {
		case entity.WarehouseGros:
			if gros == nil {
				gros = &list[i]
			} else {
				uc.log.Warn().Str("warehouse_id", list[i].ID).Msg("múltiples magasins de tipo gros; se conserva el primero")
			}
		case entity.WarehouseDetail:
			if detail == nil {
				detail = &list[i]
			} else {
				uc.log.Warn().Str("warehouse_id", list[i].ID).Msg("múltiples magasins de tipo detail; se conserva el primero")
			}
		}
	}
	return gros, detail
}

func toWarehouseCard(w *entity.Warehouse) *dto.WarehouseCard {
	if w == nil {
		return nil
	}
	return &dto.WarehouseCard{ID: w.ID, Name: w.Name, Type: w.Type, Location: w.Location}
}
