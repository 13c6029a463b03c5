package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/pricing"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

// CheckoutUseCase es el motor transaccional de ventas: numera el documento,
// calcula los totales por línea, descuenta stock y persiste cabecera y
// líneas como una sola unidad.
type CheckoutUseCase struct {
	txRunner  CheckoutTxRunner
	saleRepo  repository.SaleRepository // lecturas fuera de tx
	stampDuty decimal.Decimal
}

// NewCheckoutUseCase construye el caso de uso. stampDuty es el timbre
// fiscal fijo por documento (configuración).
func NewCheckoutUseCase(txRunner CheckoutTxRunner, saleRepo repository.SaleRepository, stampDuty decimal.Decimal) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:  txRunner,
		saleRepo:  saleRepo,
		stampDuty: stampDuty,
	}
}

// RecordSale crea una venta. Valida toda la entrada antes de tocar la base;
// dentro de la transacción incrementa la secuencia del tipo de documento,
// calcula los totales con los precios vigentes del catálogo, descuenta el
// stock de cada artículo (puede quedar negativo: el inventario es una señal,
// la venta nunca se bloquea por stock) e inserta cabecera y líneas.
// Cualquier error revierte todo, contador incluido.
func (uc *CheckoutUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	docType := entity.DocumentType(in.DocType)
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownDocumentType, in.DocType)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene líneas", domain.ErrInvalidInput)
	}
	if in.PaymentMode == "" {
		return nil, fmt.Errorf("%w: falta el modo de pago", domain.ErrInvalidInput)
	}
	for i, l := range in.Lines {
		if l.ArticleID == "" {
			return nil, fmt.Errorf("%w: línea %d sin artículo", domain.ErrInvalidInput, i+1)
		}
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: línea %d con cantidad %d", domain.ErrInvalidInput, i+1, l.Quantity)
		}
		if l.DiscountPct.IsNegative() || l.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: línea %d con remise fuera de 0-100", domain.ErrInvalidInput, i+1)
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		DocType:     docType,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		ClientID:    in.ClientID,
		PaymentMode: in.PaymentMode,
		StampDuty:   uc.stampDuty,
		Status:      entity.StatusDraft,
		CreatedAt:   now,
	}
	var lines []*entity.SaleLine

	err := uc.txRunner.Run(ctx, func(
		paramRepo repository.ParameterRepository,
		articleRepo repository.ArticleRepository,
		saleRepo repository.SaleRepository,
	) error {
		// 1) Número de documento desde la secuencia del tipo.
		// El UPDATE con RETURNING serializa las ventas concurrentes del
		// mismo tipo: dos ventas nunca observan el mismo contador.
		seq, err := paramRepo.IncrementSequence(docType.SequenceKey())
		if err != nil {
			return err
		}
		sale.DocNumber = fmt.Sprintf("%s-%d", docType.Code(), seq)

		// 2) Totales por línea con el precio vigente del catálogo
		// (fotografía: la línea guarda el precio unitario del momento).
		var totalExcl, totalTax, totalIncl decimal.Decimal
		for _, l := range in.Lines {
			info, err := articleRepo.GetPriceInfo(l.ArticleID)
			if err != nil {
				return err
			}
			if info == nil {
				return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, l.ArticleID)
			}
			lineExcl, lineTax, lineIncl := pricing.LineTotals(l.Quantity, info.PriceExclTax, l.DiscountPct, info.TaxRate)
			totalExcl = totalExcl.Add(lineExcl)
			totalTax = totalTax.Add(lineTax)
			totalIncl = totalIncl.Add(lineIncl)

			// 3) Descuento de stock (sin piso: puede quedar negativo).
			if err := articleRepo.AdjustStock(l.ArticleID, -l.Quantity); err != nil {
				return err
			}

			lines = append(lines, &entity.SaleLine{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ArticleID:   l.ArticleID,
				Quantity:    l.Quantity,
				UnitPrice:   info.PriceExclTax,
				DiscountPct: l.DiscountPct,
				TotalExcl:   lineExcl,
				TotalIncl:   lineIncl,
			})
		}
		sale.TotalExcl = totalExcl
		sale.TotalTax = totalTax
		sale.TotalIncl = totalIncl

		// 4) Cabecera primero (las líneas llevan FK a la venta).
		if err := saleRepo.CreateHeader(sale); err != nil {
			return err
		}
		for _, line := range lines {
			if err := saleRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, lines), nil
}

// GetSale obtiene una venta con sus líneas.
func (uc *CheckoutUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// SetSaleStatus cambia el estado de una venta aplicando la tabla de
// transiciones: Draft→Validated→Archived, y cualquier estado no anulado
// puede pasar a Voided. Una venta anulada no sale de ese estado.
func (uc *CheckoutUseCase) SetSaleStatus(ctx context.Context, saleID string, newStatus int) error {
	next := entity.SaleStatus(newStatus)
	if !next.Valid() {
		return fmt.Errorf("%w: estado %d", domain.ErrInvalidInput, newStatus)
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if !sale.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %d -> %d", domain.ErrInvalidTransition, sale.Status, next)
	}
	return uc.saleRepo.UpdateStatus(saleID, next)
}

// Campos admitidos por FindSales. El nombre viene del cliente; la lista
// cerrada evita igualar contra columnas arbitrarias.
var findableSaleFields = map[string]bool{
	"id":           true,
	"doc_num":      true,
	"doc_date":     true,
	"doc_type":     true,
	"client_id":    true,
	"payment_mode": true,
}

// FindSales busca ventas por igualdad sobre un campo permitido.
// Las ventas anuladas quedan siempre fuera del resultado.
func (uc *CheckoutUseCase) FindSales(ctx context.Context, field, value string) ([]dto.SaleResponse, error) {
	if !findableSaleFields[field] {
		return nil, fmt.Errorf("%w: campo de búsqueda %q", domain.ErrInvalidInput, field)
	}
	sales, err := uc.saleRepo.FindBy(field, value)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s, nil))
	}
	return out, nil
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		DocType:     int(sale.DocType),
		DocNumber:   sale.DocNumber,
		Date:        sale.Date,
		Time:        sale.Time,
		ClientID:    sale.ClientID,
		PaymentMode: sale.PaymentMode,
		TotalExcl:   sale.TotalExcl,
		TotalTax:    sale.TotalTax,
		TotalIncl:   sale.TotalIncl,
		StampDuty:   sale.StampDuty,
		Status:      int(sale.Status),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:          l.ID,
			ArticleID:   l.ArticleID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			DiscountPct: l.DiscountPct,
			TotalExcl:   l.TotalExcl,
			TotalIncl:   l.TotalIncl,
		})
	}
	return resp
}
