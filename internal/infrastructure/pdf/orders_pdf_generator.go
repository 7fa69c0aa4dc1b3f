// Package pdf genera el export imprimible de las commandes del serveur.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tenant + serveur  │  Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Réf | Table | Statut | Heure | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: commandes + total ventas                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// OrdersPDFGenerator genera el listado de commandes usando Maroto v2.
type OrdersPDFGenerator struct{}

// NewOrdersPDFGenerator construye el generador.
func NewOrdersPDFGenerator() *OrdersPDFGenerator { return &OrdersPDFGenerator{} }

// GenerateOrdersPDF genera el PDF y devuelve sus bytes.
func (g *OrdersPDFGenerator) GenerateOrdersPDF(
	_ context.Context,
	tenantName string,
	serverName string,
	orders []entity.Order,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Mes Commandes", true).
		WithAuthor(tenantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tenantName, serverName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableOrderRows(orders) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orders))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tenant + serveur (izq) y fecha de emisión (der).
func headerRow(tenantName, serverName string) core.Row {
	emitted := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(tenantName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Serveur : "+nonEmpty(serverName, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MES COMMANDES", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Émis le "+emitted, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de commandes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Réf.", 2, align.Left),
		h("Table", 3, align.Left),
		h("Statut", 2, align.Center),
		h("Heure", 2, align.Center),
		h("Total", 3, align.Right),
	)
}

// tableOrderRows: una fila por commande.
func tableOrderRows(orders []entity.Order) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				nonEmpty(o.Reference, o.ID),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(o.TableName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				o.Status,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				o.CreatedAt.Format("15:04"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatCFA(o.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: número de commandes + total de ventas alineado a la derecha.
func totalsRow(orders []entity.Order) core.Row {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}

	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Commandes :", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL :", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 6, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d", len(orders)), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(money.FormatCFA(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 6, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
