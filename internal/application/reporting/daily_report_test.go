package reporting_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caisse-pos/internal/application/reporting"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/pkg/logger"
)

// fakeSaleRepo reproduce en memoria la agregación GROUP BY doc_type de la
// consulta real: solo ventas Draft o Validated de la fecha pedida.
type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) CreateHeader(*entity.Sale) error     { return nil }
func (r *fakeSaleRepo) CreateLine(*entity.SaleLine) error   { return nil }
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) GetLinesBySaleID(string) ([]*entity.SaleLine, error) {
	return nil, nil
}
func (r *fakeSaleRepo) UpdateStatus(string, entity.SaleStatus) error { return nil }
func (r *fakeSaleRepo) FindBy(string, string) ([]*entity.Sale, error) {
	return nil, domain.ErrInvalidInput
}

func (r *fakeSaleRepo) DailyTotals(date string) ([]*entity.DailyTypeTotal, error) {
	byType := make(map[entity.DocumentType]*entity.DailyTypeTotal)
	for _, s := range r.sales {
		if s.Date != date {
			continue
		}
		if s.Status != entity.StatusDraft && s.Status != entity.StatusValidated {
			continue
		}
		t, ok := byType[s.DocType]
		if !ok {
			t = &entity.DailyTypeTotal{DocType: s.DocType}
			byType[s.DocType] = t
		}
		t.TotalIncl = t.TotalIncl.Add(s.TotalIncl)
		t.TotalTax = t.TotalTax.Add(s.TotalTax)
		t.TotalStamp = t.TotalStamp.Add(s.StampDuty)
	}
	var out []*entity.DailyTypeTotal
	for _, t := range byType {
		out = append(out, t)
	}
	return out, nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func sale(t *testing.T, docType entity.DocumentType, date string, status entity.SaleStatus, incl, tax string) *entity.Sale {
	t.Helper()
	return &entity.Sale{
		DocType:   docType,
		Date:      date,
		Status:    status,
		TotalIncl: dec(t, incl),
		TotalTax:  dec(t, tax),
		StampDuty: decimal.NewFromInt(1),
	}
}

func TestDailyReport_AgrupaPorTipo(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale(t, entity.DocTypeInvoice, "2026-08-31", entity.StatusDraft, "28.300", "4.300"),
		sale(t, entity.DocTypeInvoice, "2026-08-31", entity.StatusValidated, "10.000", "1.597"),
		sale(t, entity.DocTypeDeliveryNote, "2026-08-31", entity.StatusDraft, "5.500", "0.500"),
		// Otra fecha: fuera del reporte.
		sale(t, entity.DocTypeInvoice, "2026-08-30", entity.StatusDraft, "99", "9"),
	}}
	uc := reporting.NewReportingUseCase(repo, testLogger())

	resp, err := uc.DailyReport(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", resp.Date)
	require.Len(t, resp.Totals, 2)

	inv := resp.Totals["1"]
	assert.True(t, dec(t, "38.300").Equal(inv.TotalInclTax), "TTC facturas: %s", inv.TotalInclTax)
	assert.True(t, dec(t, "5.897").Equal(inv.TotalTax))
	assert.True(t, dec(t, "2").Equal(inv.TotalStamp))

	bl := resp.Totals["2"]
	assert.True(t, dec(t, "5.500").Equal(bl.TotalInclTax))
}

// Las anuladas y archivadas no cuentan en el reporte del día.
func TestDailyReport_ExcluyeAnuladasYArchivadas(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale(t, entity.DocTypeInvoice, "2026-08-31", entity.StatusDraft, "28.300", "4.300"),
		sale(t, entity.DocTypeDeliveryNote, "2026-08-31", entity.StatusVoided, "5.500", "0.500"),
		sale(t, entity.DocTypeQuote, "2026-08-31", entity.StatusArchived, "7.000", "1.000"),
	}}
	uc := reporting.NewReportingUseCase(repo, testLogger())

	resp, err := uc.DailyReport(context.Background(), "2026-08-31")
	require.NoError(t, err)
	require.Len(t, resp.Totals, 1)
	_, ok := resp.Totals["1"]
	assert.True(t, ok)
}

// Una fecha malformada no es un error: reporte vacío y un warning en el log.
func TestDailyReport_FechaMalformada(t *testing.T) {
	uc := reporting.NewReportingUseCase(&fakeSaleRepo{}, testLogger())

	resp, err := uc.DailyReport(context.Background(), "31/08/2026")
	require.NoError(t, err)
	assert.Equal(t, "31/08/2026", resp.Date)
	assert.Empty(t, resp.Totals)
}

func TestDailyReport_DiaSinVentas(t *testing.T) {
	uc := reporting.NewReportingUseCase(&fakeSaleRepo{}, testLogger())

	resp, err := uc.DailyReport(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Empty(t, resp.Totals)
}
