package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/logger"
	"github.com/jhoicas/pos-front/pkg/money"
)

// DashboardUseCase arma el tablero del serveur POS: contadores y commandes
// propias, releídos en cada ciclo de refresco.
type DashboardUseCase struct {
	dashboards gateway.DashboardGateway
	log        *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dg gateway.DashboardGateway, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dashboards: dg, log: log.Component("dashboard")}
}

// ServerDashboard consulta stats y commandes en paralelo. Cada lectura degrada
// a su valor cero de forma independiente: que falle una no impide renderizar
// la otra. Nunca devuelve error; el tablero siempre renderiza.
func (uc *DashboardUseCase) ServerDashboard(ctx context.Context, auth gateway.Auth, userName string) dto.ServerDashboardView {
	var (
		stats  entity.ServerStats
		orders []entity.Order
	)

	// errgroup sin cancelación cruzada: cada closure absorbe su propio fallo.
	var g errgroup.Group
	g.Go(func() error {
		s, err := uc.dashboards.ServerStats(ctx, auth)
		if err != nil {
			uc.log.Error().Err(err).Msg("lectura de stats falló, se degrada a cero")
			return nil
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		o, err := uc.dashboards.Orders(ctx, auth)
		if err != nil {
			uc.log.Error().Err(err).Msg("lectura de commandes falló, se degrada a vacío")
			return nil
		}
		orders = o
		return nil
	})
	_ = g.Wait()

	rows := make([]dto.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, dto.OrderRow{
			ID:         o.ID,
			Reference:  o.Reference,
			TableName:  o.TableName,
			Status:     o.Status,
			TotalLabel: money.FormatCFA(o.Total),
			TimeLabel:  o.CreatedAt.Format(time.Kitchen),
		})
	}

	return dto.ServerDashboardView{
		UserName:       userName,
		MyOrdersCount:  stats.MyOrdersCount,
		PreparingCount: stats.PreparingCount,
		ServedCount:    stats.ServedCount,
		MySalesLabel:   money.FormatCFA(stats.MySales),
		Orders:         rows,
	}
}
