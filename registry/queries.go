package registry

import (
	"github.com/cockroachdb/errors"

	bplus "ShowroomDB/bplustree"
	"ShowroomDB/types"
)

// ModelSales is the result of MostPopularModel.
type ModelSales struct {
	Model   string
	Sold    int
	Example *types.Car // first car of the model in VIN order, sold or not
}

// MostPopularModel counts sold cars per model name. Ties go to the model
// seen first in VIN order.
func (r *Registry) MostPopularModel() (ModelSales, bool) {
	counts := make(map[string]int)
	var order []string
	for _, c := range r.sold.All() {
		if counts[c.Name] == 0 {
			order = append(order, c.Name)
		}
		counts[c.Name]++
	}

	var best ModelSales
	for _, model := range order {
		if counts[model] > best.Sold {
			best = ModelSales{Model: model, Sold: counts[model]}
		}
	}
	if best.Sold == 0 {
		return best, false
	}
	for _, c := range r.cars.All() {
		if c.Name == best.Model {
			best.Example = c
			break
		}
	}
	return best, true
}

// TopSalesperson returns the salesperson with the highest positive
// SalesAchieved across all showrooms, and the showroom they belong to.
func (r *Registry) TopSalesperson() (*types.Salesperson, int, bool) {
	var (
		top        *types.Salesperson
		showroomID int
	)
	for i, ix := range r.salespersons {
		for _, sp := range ix.All() {
			if sp.SalesAchieved > 0 && (top == nil || sp.SalesAchieved > top.SalesAchieved) {
				top, showroomID = sp, i+1
			}
		}
	}
	return top, showroomID, top != nil
}

// AwardExtraIncentive flags the top salesperson for the bonus incentive and
// returns them. Flags set by earlier calls are left as they are.
func (r *Registry) AwardExtraIncentive() (*types.Salesperson, int, bool) {
	top, showroomID, ok := r.TopSalesperson()
	if ok {
		top.ExtraIncentive = true
	}
	return top, showroomID, ok
}

// forecastWeights apply to MonthlySales, most recent month first.
var forecastWeights = [3]float64{0.5, 0.3, 0.2}

// PredictNextMonthSales forecasts a showroom's sales in lakhs as the
// weighted mean of its last three months.
func (r *Registry) PredictNextMonthSales(showroomID int) (float64, error) {
	if _, err := r.Salespersons(showroomID); err != nil {
		return 0, err
	}
	s, ok := r.showrooms.Get(types.ShowroomKey(showroomID))
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "showroom %d", showroomID)
	}
	var forecast float64
	for i, w := range forecastWeights {
		forecast += w * s.MonthlySales[i]
	}
	return forecast, nil
}

// SalespersonsInRange lists the salespersons of one showroom whose
// SalesAchieved lies in [lo, hi], in id-key order.
func (r *Registry) SalespersonsInRange(showroomID int, lo, hi float64) ([]*types.Salesperson, error) {
	ix, err := r.Salespersons(showroomID)
	if err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, errors.Newf("empty sales range [%.2f, %.2f]", lo, hi)
	}
	var out []*types.Salesperson
	for _, sp := range ix.All() {
		if sp.SalesAchieved >= lo && sp.SalesAchieved <= hi {
			out = append(out, sp)
		}
	}
	return out, nil
}

// CarsInShowroom lists every car, sold or available, registered to a showroom.
func (r *Registry) CarsInShowroom(showroomID int) []*types.Car {
	var out []*types.Car
	for _, c := range r.cars.All() {
		if c.ShowroomID == showroomID {
			out = append(out, c)
		}
	}
	return out
}

// CustomersWithLoanTenure lists loan customers whose EMI plan runs between
// minMonths and maxMonths inclusive, ordered by salesperson key then mobile.
func (r *Registry) CustomersWithLoanTenure(minMonths, maxMonths int) []*types.Customer {
	var out []*types.Customer
	for _, key := range r.CustomerIndexKeys() {
		for _, c := range r.customers[key].All() {
			if c.Payment == types.Loan && c.EMIMonths >= minMonths && c.EMIMonths <= maxMonths {
				out = append(out, c)
			}
		}
	}
	return out
}

// FindCustomerByVIN returns the buyer of a car and the key of the
// salesperson who sold it.
func (r *Registry) FindCustomerByVIN(vin string) (*types.Customer, string, bool) {
	for _, key := range r.CustomerIndexKeys() {
		for _, c := range r.customers[key].All() {
			if c.VIN == vin {
				return c, key, true
			}
		}
	}
	return nil, "", false
}

// MergedSalespersons folds every showroom's salesperson index into one new
// tree keyed by salesperson id. Ids shared across showrooms keep the entry
// of the highest showroom.
func (r *Registry) MergedSalespersons() (*bplus.BPlusTree[*types.Salesperson], error) {
	dst, err := bplus.NewBPlusTree[*types.Salesperson](r.cfg.Index.Order)
	if err != nil {
		return nil, err
	}
	srcs := make([]*bplus.BPlusTree[*types.Salesperson], 0, len(r.salespersons))
	for _, ix := range r.salespersons {
		srcs = append(srcs, ix.Tree())
	}
	bplus.Merge(dst, srcs...)
	return dst, nil
}

// MergedCustomers folds every customer index into one new tree keyed by
// mobile number.
func (r *Registry) MergedCustomers() (*bplus.BPlusTree[*types.Customer], error) {
	dst, err := bplus.NewBPlusTree[*types.Customer](r.cfg.Index.Order)
	if err != nil {
		return nil, err
	}
	srcs := make([]*bplus.BPlusTree[*types.Customer], 0, len(r.customers))
	for _, key := range r.CustomerIndexKeys() {
		srcs = append(srcs, r.customers[key].Tree())
	}
	bplus.Merge(dst, srcs...)
	return dst, nil
}
