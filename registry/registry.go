package registry

import (
	"maps"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"ShowroomDB/config"
	"ShowroomDB/types"
)

var (
	ErrUnknownShowroom = errors.New("unknown showroom")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNotFound        = errors.New("not found")
	ErrAlreadySold     = errors.New("car already sold")
)

// Registry owns every index of the dealership:
//
//	cars, available, sold    VIN -> *Car
//	showrooms                showroom id -> *Showroom
//	salespersons[i]          salesperson id -> *Salesperson, one per showroom
//	customers[key]           mobile -> *Customer, one per salesperson ("1_101")
//
// A car sits in the all-cars index and in exactly one of available or sold.
// Registry is not safe for concurrent use.
type Registry struct {
	cfg *config.Config
	log *zap.Logger

	cars      *Index[*types.Car]
	available *Index[*types.Car]
	sold      *Index[*types.Car]
	showrooms *Index[*types.Showroom]

	salespersons []*Index[*types.Salesperson]
	customers    map[string]*Index[*types.Customer]
}

func New(cfg *config.Config, log *zap.Logger) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Registry{
		cfg:       cfg,
		log:       log,
		customers: make(map[string]*Index[*types.Customer]),
	}

	var err error
	if r.cars, err = NewIndex[*types.Car]("cars", cfg.Index, log); err != nil {
		return nil, err
	}
	if r.available, err = NewIndex[*types.Car]("available", cfg.Index, log); err != nil {
		return nil, err
	}
	if r.sold, err = NewIndex[*types.Car]("sold", cfg.Index, log); err != nil {
		return nil, err
	}
	if r.showrooms, err = NewIndex[*types.Showroom]("showrooms", cfg.Index, log); err != nil {
		return nil, err
	}
	for i := 1; i <= cfg.Showrooms.Count; i++ {
		ix, err := NewIndex[*types.Salesperson]("salespersons/"+strconv.Itoa(i), cfg.Index, log)
		if err != nil {
			return nil, err
		}
		r.salespersons = append(r.salespersons, ix)
	}

	log.Info("registry ready",
		zap.Int("order", cfg.Index.Order),
		zap.Int("showrooms", cfg.Showrooms.Count),
		zap.Bool("cache", cfg.Index.Cache.Enabled))
	return r, nil
}

func (r *Registry) Cars() *Index[*types.Car] { return r.cars }
func (r *Registry) AvailableCars() *Index[*types.Car] { return r.available }
func (r *Registry) SoldCars() *Index[*types.Car] { return r.sold }
func (r *Registry) Showrooms() *Index[*types.Showroom] { return r.showrooms }
func (r *Registry) ShowroomCount() int { return len(r.salespersons) }

// Salespersons returns the salesperson index of a showroom (1-based).
func (r *Registry) Salespersons(showroomID int) (*Index[*types.Salesperson], error) {
	if showroomID < 1 || showroomID > len(r.salespersons) {
		return nil, errors.Wrapf(ErrUnknownShowroom, "showroom %d (have %d)", showroomID, len(r.salespersons))
	}
	return r.salespersons[showroomID-1], nil
}

// Customers returns the customer index of a salesperson, creating it on
// first use.
func (r *Registry) Customers(salespersonKey string) (*Index[*types.Customer], error) {
	if ix, ok := r.customers[salespersonKey]; ok {
		return ix, nil
	}
	showroomID, _, err := types.ParseSalespersonKey(salespersonKey)
	if err != nil {
		return nil, err
	}
	if _, err := r.Salespersons(showroomID); err != nil {
		return nil, err
	}

	ix, err := NewIndex[*types.Customer]("customers/"+salespersonKey, r.cfg.Index, r.log)
	if err != nil {
		return nil, err
	}
	r.customers[salespersonKey] = ix
	return ix, nil
}

// CustomerIndexKeys lists the salesperson keys that have a customer index,
// in ascending order.
func (r *Registry) CustomerIndexKeys() []string {
	return slices.Sorted(maps.Keys(r.customers))
}

// AddShowroom indexes s under its id. The id must be one of the configured
// showrooms.
func (r *Registry) AddShowroom(s *types.Showroom) error {
	if _, err := r.Salespersons(s.ID); err != nil {
		return err
	}
	key := types.ShowroomKey(s.ID)
	if r.showrooms.Has(key) {
		return errors.Wrapf(ErrDuplicateKey, "showroom %s", key)
	}
	r.showrooms.Put(key, s)
	return nil
}

// AddCar registers a new, unsold car in showroomID and bumps the showroom's
// stock counters when the showroom is indexed.
func (r *Registry) AddCar(showroomID int, c *types.Car) error {
	if _, err := r.Salespersons(showroomID); err != nil {
		return err
	}
	if r.cars.Has(c.VIN) {
		return errors.Wrapf(ErrDuplicateKey, "car %s", c.VIN)
	}
	c.ShowroomID = showroomID
	c.Sold = false
	r.cars.Put(c.VIN, c)
	r.available.Put(c.VIN, c)

	if s, ok := r.showrooms.Get(types.ShowroomKey(showroomID)); ok {
		s.TotalCars++
		s.AvailableCars++
	}
	return nil
}

// AddSalesperson indexes sp in its showroom. A zero target gets
// DefaultSalesTarget.
func (r *Registry) AddSalesperson(showroomID int, sp *types.Salesperson) error {
	ix, err := r.Salespersons(showroomID)
	if err != nil {
		return err
	}
	key := types.SalespersonID(sp.ID)
	if ix.Has(key) {
		return errors.Wrapf(ErrDuplicateKey, "salesperson %s in showroom %d", key, showroomID)
	}
	if sp.SalesTarget == 0 {
		sp.SalesTarget = types.DefaultSalesTarget
	}
	ix.Put(key, sp)
	return nil
}

// AddCustomer indexes c under the salesperson who sold to them.
func (r *Registry) AddCustomer(salespersonKey string, c *types.Customer) error {
	ix, err := r.Customers(salespersonKey)
	if err != nil {
		return err
	}
	if ix.Has(c.Mobile) {
		return errors.Wrapf(ErrDuplicateKey, "customer %s of %s", c.Mobile, salespersonKey)
	}
	ix.Put(c.Mobile, c)
	return nil
}

// MarkSold moves a car from the available index to the sold index and books
// its price against the showroom's totals and current month. Commission and
// customer records are left to the caller.
func (r *Registry) MarkSold(vin string) (*types.Car, error) {
	c, ok := r.cars.Get(vin)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "car %s", vin)
	}
	if c.Sold {
		return nil, errors.Wrapf(ErrAlreadySold, "car %s", vin)
	}
	if !r.available.Delete(vin) {
		return nil, errors.AssertionFailedf("car %s indexed but not available", vin)
	}
	c.Sold = true
	r.sold.Put(vin, c)

	if s, ok := r.showrooms.Get(types.ShowroomKey(c.ShowroomID)); ok {
		s.AvailableCars--
		s.SoldCars++
		s.TotalSales += c.Price
		s.MonthlySales[0] += c.Price
		s.MonthlyCars[0]++
	}
	return c, nil
}

// Close releases the caches of every index.
func (r *Registry) Close() {
	r.cars.Close()
	r.available.Close()
	r.sold.Close()
	r.showrooms.Close()
	for _, ix := range r.salespersons {
		ix.Close()
	}
	for _, ix := range r.customers {
		ix.Close()
	}
}
