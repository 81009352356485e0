// Package pdf genera el reporte de calificaciones de una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + email │ Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Promedio │ Total de calificaciones                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Usuario | Email | Calificación | Actualizada        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.OwnerReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOwnerReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateOwnerReport(
	_ context.Context,
	data *dto.OwnerDashboardResponse,
	generatedAt time.Time,
) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de calificaciones", true).
		WithAuthor(data.Store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(data.Raters) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Aún no hay calificaciones para esta tienda.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(raterRows(data.Raters)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data *dto.OwnerDashboardResponse, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(data.Store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Store.Email+"  |  "+data.Store.Address, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE CALIFICACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(data *dto.OwnerDashboardResponse) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("PROMEDIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(data.AverageRating+" / 5", props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		),
		col.New(6).Add(
			text.New("TOTAL DE CALIFICACIONES", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(strconv.FormatInt(data.TotalRatings, 10), props.Text{Style: fontstyle.Bold, Size: 12, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Usuario", 4, align.Left),
		h("Email", 4, align.Left),
		h("Calificación", 2, align.Center),
		h("Actualizada", 2, align.Right),
	)
}

func raterRows(raters []dto.RaterDTO) []core.Row {
	result := make([]core.Row, 0, len(raters))
	for _, r := range raters {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(r.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.Email, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(strconv.Itoa(r.Rating), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(r.UpdatedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}
