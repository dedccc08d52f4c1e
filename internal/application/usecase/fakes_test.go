package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/pkg/textutil"
)

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

type fakeFarmerRepo struct {
	byID map[string]*entity.Farmer
}

func newFakeFarmerRepo() *fakeFarmerRepo {
	return &fakeFarmerRepo{byID: make(map[string]*entity.Farmer)}
}

func (f *fakeFarmerRepo) Create(fr *entity.Farmer) error {
	c := *fr
	f.byID[fr.ID] = &c
	return nil
}

func (f *fakeFarmerRepo) GetByID(id string) (*entity.Farmer, error) {
	fr, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *fr
	return &c, nil
}

func (f *fakeFarmerRepo) GetByNIC(nic string) (*entity.Farmer, error) {
	for _, fr := range f.byID {
		if fr.NIC == nic {
			c := *fr
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFarmerRepo) List(filter repository.FarmerFilter) ([]*entity.Farmer, error) {
	out := make([]*entity.Farmer, 0, len(f.byID))
	for _, fr := range f.byID {
		if filter.Status != "" && fr.Status != filter.Status {
			continue
		}
		// Mismo contrato que Postgres: unaccent(columna) ILIKE término normalizado.
		if filter.Search != "" &&
			!strings.Contains(textutil.NormalizeSearch(fr.Name), filter.Search) &&
			!strings.Contains(textutil.NormalizeSearch(fr.FarmLocation.Address), filter.Search) {
			continue
		}
		c := *fr
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeFarmerRepo) ListEligible(pepperType string, minQty decimal.Decimal) ([]*entity.Farmer, error) {
	out := make([]*entity.Farmer, 0)
	for _, fr := range f.byID {
		if fr.Status == entity.FarmerStatusActive && fr.CapacityPerMonth.For(pepperType).GreaterThanOrEqual(minQty) {
			c := *fr
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeFarmerRepo) Update(fr *entity.Farmer) error {
	if _, ok := f.byID[fr.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *fr
	f.byID[fr.ID] = &c
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

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]*entity.Employee)}
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error {
	c := *e
	f.byID[e.ID] = &c
	return nil
}

func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *e
	return &c, nil
}

func (f *fakeEmployeeRepo) List(status string) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		if status != "" && e.Status != status {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(e *entity.Employee) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *e
	f.byID[e.ID] = &c
	return nil
}

func (f *fakeEmployeeRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCustomerRepo struct {
	byID map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) FindByEmail(email string) (*entity.Customer, error) {
	for _, c := range f.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.byID))
	for _, c := range f.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}
