package procurement

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
	"github.com/ceylonpepper/pepperworks-api/pkg/logger"
)

// Fakes en memoria del flujo de compras. El runner restaura el estado en
// caso de error para imitar el rollback real.

type fakeOrderRepo struct {
	byRMOrderID map[string]*entity.RawMaterialOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byRMOrderID: make(map[string]*entity.RawMaterialOrder)}
}

func cloneOrder(o *entity.RawMaterialOrder) *entity.RawMaterialOrder {
	c := *o
	return &c
}

func (f *fakeOrderRepo) Create(o *entity.RawMaterialOrder) error {
	c := cloneOrder(o)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.byRMOrderID[o.RMOrderID] = c
	return nil
}

func (f *fakeOrderRepo) GetByRMOrderID(rmOrderID string) (*entity.RawMaterialOrder, error) {
	o, ok := f.byRMOrderID[rmOrderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (f *fakeOrderRepo) GetByRMOrderIDForUpdate(rmOrderID string) (*entity.RawMaterialOrder, error) {
	return f.GetByRMOrderID(rmOrderID)
}

func (f *fakeOrderRepo) List(filter repository.OrderFilter) ([]*entity.RawMaterialOrder, error) {
	out := make([]*entity.RawMaterialOrder, 0)
	for _, o := range f.byRMOrderID {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.RawMaterialType != "" && o.RawMaterialType != filter.RawMaterialType {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(o *entity.RawMaterialOrder) error {
	if _, ok := f.byRMOrderID[o.RMOrderID]; !ok {
		return domain.ErrNotFound
	}
	f.byRMOrderID[o.RMOrderID] = cloneOrder(o)
	return nil
}

func (f *fakeOrderRepo) Delete(id string) error {
	for key, o := range f.byRMOrderID {
		if o.ID == id {
			delete(f.byRMOrderID, key)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeFarmerRepo struct {
	byID map[string]*entity.Farmer
}

func newFakeFarmerRepo() *fakeFarmerRepo {
	return &fakeFarmerRepo{byID: make(map[string]*entity.Farmer)}
}

func cloneFarmer(f *entity.Farmer) *entity.Farmer {
	c := *f
	return &c
}

func (f *fakeFarmerRepo) Create(fr *entity.Farmer) error {
	f.byID[fr.ID] = cloneFarmer(fr)
	return nil
}

func (f *fakeFarmerRepo) GetByID(id string) (*entity.Farmer, error) {
	fr, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneFarmer(fr), nil
}

func (f *fakeFarmerRepo) GetByNIC(nic string) (*entity.Farmer, error) {
	for _, fr := range f.byID {
		if fr.NIC == nic {
			return cloneFarmer(fr), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFarmerRepo) List(_ repository.FarmerFilter) ([]*entity.Farmer, error) {
	out := make([]*entity.Farmer, 0, len(f.byID))
	for _, fr := range f.byID {
		out = append(out, cloneFarmer(fr))
	}
	return out, nil
}

func (f *fakeFarmerRepo) ListEligible(pepperType string, minQty decimal.Decimal) ([]*entity.Farmer, error) {
	out := make([]*entity.Farmer, 0)
	for _, fr := range f.byID {
		if fr.Status != entity.FarmerStatusActive {
			continue
		}
		capacity := fr.CapacityPerMonth.For(pepperType)
		if minQty.IsZero() {
			if capacity.IsPositive() {
				out = append(out, cloneFarmer(fr))
			}
			continue
		}
		if capacity.GreaterThanOrEqual(minQty) {
			out = append(out, cloneFarmer(fr))
		}
	}
	return out, nil
}

func (f *fakeFarmerRepo) Update(fr *entity.Farmer) error {
	if _, ok := f.byID[fr.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[fr.ID] = cloneFarmer(fr)
	return nil
}

func (f *fakeFarmerRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeFarmerRepo) TouchLastSupply(id string, at time.Time) error {
	fr, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	fr.LastSupplyDate = &at
	return nil
}

type fakePaymentRepo struct {
	payments   []*entity.FarmerPayment
	failCreate bool
}

func (f *fakePaymentRepo) Create(p *entity.FarmerPayment) error {
	if f.failCreate {
		return errors.New("fallo simulado al crear el pago")
	}
	c := *p
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.payments = append(f.payments, &c)
	return nil
}

func (f *fakePaymentRepo) GetByPaymentID(paymentID string) (*entity.FarmerPayment, error) {
	for _, p := range f.payments {
		if p.PaymentID == paymentID {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePaymentRepo) GetByRMOrderID(rmOrderID string) (*entity.FarmerPayment, error) {
	for _, p := range f.payments {
		if p.RMOrderID == rmOrderID {
			c := *p
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePaymentRepo) List(farmerID string) ([]*entity.FarmerPayment, error) {
	out := make([]*entity.FarmerPayment, 0)
	for _, p := range f.payments {
		if farmerID != "" && p.FarmerID != farmerID {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

type fakeMaterialRepo struct {
	byType map[string]*entity.RawMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{byType: make(map[string]*entity.RawMaterial)}
}

func (f *fakeMaterialRepo) seed(pepperType string, qty, reorder decimal.Decimal) {
	f.byType[pepperType] = &entity.RawMaterial{
		ID:             "uuid-" + pepperType,
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

type fakeTxRunner struct {
	orders    *fakeOrderRepo
	materials *fakeMaterialRepo
	sequences *fakeSeqRepo
}

func (f *fakeTxRunner) RunProcurement(_ context.Context, fn func(r TxRepos) error) error {
	orderSnap := make(map[string]*entity.RawMaterialOrder, len(f.orders.byRMOrderID))
	for k, v := range f.orders.byRMOrderID {
		orderSnap[k] = cloneOrder(v)
	}
	matSnap := make(map[string]*entity.RawMaterial, len(f.materials.byType))
	for k, v := range f.materials.byType {
		matSnap[k] = cloneMaterial(v)
	}

	err := fn(TxRepos{
		Orders:    f.orders,
		Materials: f.materials,
		Sequences: f.sequences,
	})
	if err != nil {
		f.orders.byRMOrderID = orderSnap
		f.materials.byType = matSnap
	}
	return err
}

type fixture struct {
	orders    *fakeOrderRepo
	farmers   *fakeFarmerRepo
	payments  *fakePaymentRepo
	materials *fakeMaterialRepo
	uc        *UseCase
}

func newFixture() *fixture {
	orders := newFakeOrderRepo()
	farmers := newFakeFarmerRepo()
	payments := &fakePaymentRepo{}
	materials := newFakeMaterialRepo()
	sequences := newFakeSeqRepo()
	tx := &fakeTxRunner{orders: orders, materials: materials, sequences: sequences}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := NewUseCase(orders, farmers, payments, sequences, tx, log)
	return &fixture{
		orders:    orders,
		farmers:   farmers,
		payments:  payments,
		materials: materials,
		uc:        uc,
	}
}

func (fx *fixture) seedFarmer(id string, greenCapacity, greenPrice int64) *entity.Farmer {
	fr := &entity.Farmer{
		ID:     id,
		Name:   "Sunil Perera",
		NIC:    "912345678V",
		Status: entity.FarmerStatusActive,
		CapacityPerMonth: entity.PepperRates{
			Green: decimal.NewFromInt(greenCapacity),
			Black: decimal.NewFromInt(greenCapacity),
		},
		PricePerUnit: entity.PepperRates{
			Green: decimal.NewFromInt(greenPrice),
			Black: decimal.NewFromInt(greenPrice * 2),
		},
	}
	fx.farmers.byID[id] = fr
	return fr
}
