// Package report genera el reporte PDF de calificaciones para el dueño de tienda.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
)

// OwnerDashboardSource obtiene el panel del dueño (implementado por usecase.OwnerUseCase).
type OwnerDashboardSource interface {
	Dashboard(ctx context.Context, ownerID string) (*dto.OwnerDashboardResponse, error)
}

// OwnerReportGenerator puerto de salida para la generación del PDF.
type OwnerReportGenerator interface {
	GenerateOwnerReport(ctx context.Context, data *dto.OwnerDashboardResponse, generatedAt time.Time) ([]byte, error)
}

// PDFUseCase arma el reporte a partir del panel del dueño.
type PDFUseCase struct {
	source    OwnerDashboardSource
	generator OwnerReportGenerator
	now       func() time.Time
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(source OwnerDashboardSource, generator OwnerReportGenerator) *PDFUseCase {
	return &PDFUseCase{source: source, generator: generator, now: time.Now}
}

// DownloadOwnerReport devuelve los bytes del PDF y un nombre de archivo sugerido.
// Propaga domain.ErrStoreNotFound si el dueño no tiene tienda.
func (uc *PDFUseCase) DownloadOwnerReport(ctx context.Context, ownerID string) (pdfBytes []byte, filename string, err error) {
	data, err := uc.source.Dashboard(ctx, ownerID)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdfBytes, err = uc.generator.GenerateOwnerReport(ctx, data, now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("calificaciones_%s_%s.pdf", slug(data.Store.Name), now.Format("20060102"))
	return pdfBytes, filename, nil
}

// slug deja solo letras/dígitos ASCII en minúscula, separados por guion bajo.
func slug(s string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "tienda"
	}
	return out
}
