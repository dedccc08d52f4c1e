package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
	"github.com/ceylonpepper/pepperworks-api/pkg/textutil"
)

// Fakes en memoria para los tests del paquete. Los getters devuelven copias
// y el runner de transacciones restaura el estado en caso de error, para que
// los tests de todo-o-nada observen el mismo comportamiento que Postgres.

type fakeMaterialRepo struct {
	byType map[string]*entity.RawMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{byType: make(map[string]*entity.RawMaterial)}
}

func (f *fakeMaterialRepo) seed(pepperType string, qty, reorder decimal.Decimal) {
	f.byType[pepperType] = &entity.RawMaterial{
		ID:             "uuid-" + pepperType,
		RawMaterialID:  "RM-00" + pepperType[:1],
		Type:           pepperType,
		QuantityKg:     qty,
		ReorderLevelKg: reorder,
		LowStockStatus: stock.DeriveStatus(qty, reorder),
	}
}

func cloneMaterial(m *entity.RawMaterial) *entity.RawMaterial {
	c := *m
	return &c
}

func (f *fakeMaterialRepo) Create(m *entity.RawMaterial) error {
	f.byType[m.Type] = cloneMaterial(m)
	return nil
}

func (f *fakeMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	for _, m := range f.byType {
		if m.ID == id {
			return cloneMaterial(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMaterialRepo) GetByType(pepperType string) (*entity.RawMaterial, error) {
	m, ok := f.byType[pepperType]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneMaterial(m), nil
}

func (f *fakeMaterialRepo) GetByTypeForUpdate(pepperType string) (*entity.RawMaterial, error) {
	return f.GetByType(pepperType)
}

func (f *fakeMaterialRepo) List() ([]*entity.RawMaterial, error) {
	out := make([]*entity.RawMaterial, 0, len(f.byType))
	for _, m := range f.byType {
		out = append(out, cloneMaterial(m))
	}
	return out, nil
}

func (f *fakeMaterialRepo) ListLowStock() ([]*entity.RawMaterial, error) {
	out := make([]*entity.RawMaterial, 0)
	for _, m := range f.byType {
		if m.LowStockStatus == entity.StockStatusLow {
			out = append(out, cloneMaterial(m))
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Update(m *entity.RawMaterial) error {
	if _, ok := f.byType[m.Type]; !ok {
		return domain.ErrNotFound
	}
	f.byType[m.Type] = cloneMaterial(m)
	return nil
}

func (f *fakeMaterialRepo) Debit(pepperType string, amountKg decimal.Decimal) (bool, error) {
	m, ok := f.byType[pepperType]
	if !ok {
		return false, domain.ErrNotFound
	}
	if m.QuantityKg.LessThan(amountKg) {
		return false, nil
	}
	m.QuantityKg = m.QuantityKg.Sub(amountKg)
	m.LowStockStatus = stock.DeriveStatus(m.QuantityKg, m.ReorderLevelKg)
	return true, nil
}

func (f *fakeMaterialRepo) Credit(pepperType string, amountKg decimal.Decimal) error {
	m, ok := f.byType[pepperType]
	if !ok {
		return domain.ErrNotFound
	}
	m.QuantityKg = m.QuantityKg.Add(amountKg)
	m.LowStockStatus = stock.DeriveStatus(m.QuantityKg, m.ReorderLevelKg)
	return nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Recipe = append([]entity.RecipeLine(nil), p.Recipe...)
	return &c
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.byID[p.ID] = cloneProduct(p)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneProduct(p), nil
}

func (f *fakeProductRepo) GetByProductID(productID string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.ProductID == productID {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (f *fakeProductRepo) ListAvailable(flt repository.AvailableFilter) ([]*entity.Product, int, error) {
	matches := make([]*entity.Product, 0)
	for _, p := range f.byID {
		if p.Status != entity.ProductStatusActive {
			continue
		}
		if stock.Availability(p.CurrentStock, p.SafetyStock) <= 0 {
			continue
		}
		if flt.Category != "" && p.Category != flt.Category {
			continue
		}
		// Mismo contrato que Postgres: unaccent(name) ILIKE término normalizado.
		if flt.Search != "" && !strings.Contains(textutil.NormalizeSearch(p.Name), flt.Search) {
			continue
		}
		matches = append(matches, cloneProduct(p))
	}
	total := len(matches)
	if flt.Limit > 0 {
		if flt.Offset >= len(matches) {
			return nil, total, nil
		}
		end := flt.Offset + flt.Limit
		if end > len(matches) {
			end = len(matches)
		}
		matches = matches[flt.Offset:end]
	}
	return matches, total, nil
}

func (f *fakeProductRepo) Categories() ([]string, error) {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range f.byID {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = cloneProduct(p)
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeHistoryRepo struct {
	entries []*entity.InventoryHistoryEntry
}

func (f *fakeHistoryRepo) Create(e *entity.InventoryHistoryEntry) error {
	c := *e
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.entries = append(f.entries, &c)
	return nil
}

func (f *fakeHistoryRepo) ListSince(since time.Time) ([]*entity.InventoryHistoryEntry, error) {
	out := make([]*entity.InventoryHistoryEntry, 0)
	for i := len(f.entries) - 1; i >= 0; i-- {
		if !f.entries[i].CreatedAt.Before(since) {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakeSeqRepo struct {
	counters map[string]int64
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{counters: make(map[string]int64)}
}

func (f *fakeSeqRepo) Next(key string) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

// fakeTxRunner ejecuta fn sobre los fakes y restaura el estado previo si fn
// falla, imitando el rollback de la transacción real.
type fakeTxRunner struct {
	materials *fakeMaterialRepo
	products  *fakeProductRepo
	history   *fakeHistoryRepo
	sequences *fakeSeqRepo
}

func (f *fakeTxRunner) RunInventory(_ context.Context, fn func(r TxRepos) error) error {
	matSnap := make(map[string]*entity.RawMaterial, len(f.materials.byType))
	for k, v := range f.materials.byType {
		matSnap[k] = cloneMaterial(v)
	}
	prodSnap := make(map[string]*entity.Product, len(f.products.byID))
	for k, v := range f.products.byID {
		prodSnap[k] = cloneProduct(v)
	}
	histSnap := append([]*entity.InventoryHistoryEntry(nil), f.history.entries...)

	err := fn(TxRepos{
		Materials: f.materials,
		Products:  f.products,
		History:   f.history,
		Sequences: f.sequences,
	})
	if err != nil {
		f.materials.byType = matSnap
		f.products.byID = prodSnap
		f.history.entries = histSnap
	}
	return err
}

// newFixture arma los fakes y los dos casos de uso del paquete.
func newFixture() (*fakeMaterialRepo, *fakeProductRepo, *fakeHistoryRepo, *LedgerUseCase, *ProductStockUseCase) {
	materials := newFakeMaterialRepo()
	products := newFakeProductRepo()
	history := &fakeHistoryRepo{}
	tx := &fakeTxRunner{
		materials: materials,
		products:  products,
		history:   history,
		sequences: newFakeSeqRepo(),
	}
	ledger := NewLedgerUseCase(materials, tx)
	stockUC := NewProductStockUseCase(products, history, tx)
	return materials, products, history, ledger, stockUC
}
