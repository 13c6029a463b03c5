package checkout_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

// fakeStore simula la base en memoria para probar el motor de ventas sin
// PostgreSQL. El runner de transacciones falso toma una instantánea antes
// de ejecutar el callback y la restaura si este falla, reproduciendo el
// rollback real.
type fakeStore struct {
	params   map[string]string
	articles map[string]*entity.Article
	sales    map[string]*entity.Sale
	lines    map[string][]*entity.SaleLine

	// failLineAt hace fallar la N-ésima inserción de línea (base 1).
	// Cero desactiva la inyección.
	failLineAt  int
	lineInserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		params:   make(map[string]string),
		articles: make(map[string]*entity.Article),
		sales:    make(map[string]*entity.Sale),
		lines:    make(map[string][]*entity.SaleLine),
	}
}

type storeSnapshot struct {
	params   map[string]string
	articles map[string]*entity.Article
	sales    map[string]*entity.Sale
	lines    map[string][]*entity.SaleLine
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		params:   make(map[string]string, len(s.params)),
		articles: make(map[string]*entity.Article, len(s.articles)),
		sales:    make(map[string]*entity.Sale, len(s.sales)),
		lines:    make(map[string][]*entity.SaleLine, len(s.lines)),
	}
	for k, v := range s.params {
		snap.params[k] = v
	}
	for k, v := range s.articles {
		cp := *v
		snap.articles[k] = &cp
	}
	for k, v := range s.sales {
		cp := *v
		snap.sales[k] = &cp
	}
	for k, v := range s.lines {
		cps := make([]*entity.SaleLine, len(v))
		for i, l := range v {
			cp := *l
			cps[i] = &cp
		}
		snap.lines[k] = cps
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.params = snap.params
	s.articles = snap.articles
	s.sales = snap.sales
	s.lines = snap.lines
}

// ── ParameterRepository ───────────────────────────────────────────────────────

type fakeParamRepo struct{ s *fakeStore }

func (r *fakeParamRepo) Get(key string) (string, error) {
	v, ok := r.s.params[key]
	if !ok {
		return "", fmt.Errorf("%w: parámetro %q", domain.ErrNotFound, key)
	}
	return v, nil
}

func (r *fakeParamRepo) Set(key, value string) error {
	if _, ok := r.s.params[key]; !ok {
		return fmt.Errorf("%w: parámetro %q", domain.ErrNotFound, key)
	}
	r.s.params[key] = value
	return nil
}

func (r *fakeParamRepo) Add(key, value string) error {
	if _, ok := r.s.params[key]; ok {
		return fmt.Errorf("%w: parámetro %q", domain.ErrDuplicate, key)
	}
	r.s.params[key] = value
	return nil
}

func (r *fakeParamRepo) SeedDefaults(defaults map[string]string) error {
	for k, v := range defaults {
		if _, ok := r.s.params[k]; !ok {
			r.s.params[k] = v
		}
	}
	return nil
}

func (r *fakeParamRepo) IncrementSequence(key string) (int64, error) {
	raw, ok := r.s.params[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrSequenceKeyMissing, key)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("secuencia %q no numérica: %w", key, err)
	}
	n++
	r.s.params[key] = strconv.FormatInt(n, 10)
	return n, nil
}

// ── ArticleRepository ─────────────────────────────────────────────────────────

type fakeArticleRepo struct{ s *fakeStore }

func (r *fakeArticleRepo) Create(a *entity.Article) error {
	cp := *a
	r.s.articles[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(id string) (*entity.Article, error) {
	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) GetByName(name string) (*entity.Article, error) {
	for _, a := range r.s.articles {
		if a.Name == name {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range r.s.articles {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeArticleRepo) ApplyUpdate(id string, upd entity.ArticleUpdate) error {
	a, ok := r.s.articles[id]
	if !ok {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.Stock != nil {
		a.Stock = *upd.Stock
	}
	if upd.TaxRate != nil {
		a.TaxRate = *upd.TaxRate
	}
	if upd.PurchasePrice != nil {
		a.PurchasePrice = *upd.PurchasePrice
	}
	if upd.SalePriceExclTax != nil {
		a.SalePriceExclTax = *upd.SalePriceExclTax
	}
	return nil
}

func (r *fakeArticleRepo) UpdateDerived(id string, weightedAvg, grossMarginPct, salePriceInclTax decimal.Decimal) error {
	a, ok := r.s.articles[id]
	if !ok {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	a.WeightedAvgPrice = weightedAvg
	a.GrossMarginPct = grossMarginPct
	a.SalePriceInclTax = salePriceInclTax
	return nil
}

func (r *fakeArticleRepo) Delete(id string) error {
	if _, ok := r.s.articles[id]; !ok {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	delete(r.s.articles, id)
	return nil
}

func (r *fakeArticleRepo) GetPriceInfo(id string) (*entity.ArticlePriceInfo, error) {
	a, ok := r.s.articles[id]
	if !ok {
		return nil, nil
	}
	return &entity.ArticlePriceInfo{PriceExclTax: a.SalePriceExclTax, TaxRate: a.TaxRate}, nil
}

func (r *fakeArticleRepo) AdjustStock(id string, delta int64) error {
	a, ok := r.s.articles[id]
	if !ok {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	a.Stock += delta
	return nil
}

// ── SaleRepository ────────────────────────────────────────────────────────────

var errDiskFull = errors.New("insert sale line: disco lleno")

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) CreateHeader(sale *entity.Sale) error {
	for _, existing := range r.s.sales {
		if existing.DocNumber == sale.DocNumber {
			return fmt.Errorf("%w: número de documento %q", domain.ErrDuplicate, sale.DocNumber)
		}
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateLine(line *entity.SaleLine) error {
	r.s.lineInserts++
	if r.s.failLineAt > 0 && r.s.lineInserts == r.s.failLineAt {
		return errDiskFull
	}
	cp := *line
	r.s.lines[line.SaleID] = append(r.s.lines[line.SaleID], &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for _, l := range r.s.lines[saleID] {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(id string, status entity.SaleStatus) error {
	s, ok := r.s.sales[id]
	if !ok {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	s.Status = status
	return nil
}

func (r *fakeSaleRepo) FindBy(field, value string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if s.Status == entity.StatusVoided {
			continue
		}
		var match bool
		switch field {
		case "id":
			match = s.ID == value
		case "doc_num":
			match = s.DocNumber == value
		case "doc_date":
			match = s.Date == value
		case "doc_type":
			match = s.DocType.Code() == value
		case "client_id":
			match = s.ClientID == value
		case "payment_mode":
			match = s.PaymentMode == value
		default:
			return nil, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
		}
		if match {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) DailyTotals(date string) ([]*entity.DailyTypeTotal, error) {
	byType := make(map[entity.DocumentType]*entity.DailyTypeTotal)
	for _, s := range r.s.sales {
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

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	paramRepo repository.ParameterRepository,
	articleRepo repository.ArticleRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&fakeParamRepo{r.s}, &fakeArticleRepo{r.s}, &fakeSaleRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
