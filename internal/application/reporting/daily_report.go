package reporting

import (
	"context"
	"time"

	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
	"github.com/tu-usuario/caisse-pos/pkg/logger"
)

// ReportingUseCase agrega ventas persistidas por fecha y tipo de documento.
// Solo lectura: no tiene nada que revertir, así que una fecha malformada se
// registra y devuelve un reporte vacío en lugar de error.
type ReportingUseCase struct {
	saleRepo repository.SaleRepository
	log      *logger.Logger
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(saleRepo repository.SaleRepository, log *logger.Logger) *ReportingUseCase {
	return &ReportingUseCase{saleRepo: saleRepo, log: log}
}

// DailyReport suma total TTC, TVA y timbre por tipo de documento para la
// fecha dada ("2006-01-02"). Entran solo ventas Draft o Validated; las
// archivadas y anuladas quedan fuera.
func (uc *ReportingUseCase) DailyReport(ctx context.Context, date string) (*dto.DailyReportResponse, error) {
	resp := &dto.DailyReportResponse{
		Date:   date,
		Totals: make(map[string]dto.DocTypeTotalsDTO),
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		uc.log.Warn().Str("date", date).Msg("reporte diario: fecha malformada, se devuelve vacío")
		return resp, nil
	}
	totals, err := uc.saleRepo.DailyTotals(date)
	if err != nil {
		return nil, err
	}
	for _, t := range totals {
		resp.Totals[t.DocType.Code()] = dto.DocTypeTotalsDTO{
			TotalInclTax: t.TotalIncl,
			TotalTax:     t.TotalTax,
			TotalStamp:   t.TotalStamp,
		}
	}
	return resp, nil
}
