// Seed program: fills a registry with fake showrooms, cars, salespersons and
// customers, sells part of the stock, then prints the aggregate reports.
// Run: go run ./cmd/seed -cars 60
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-faker/faker/v4"
	"go.uber.org/zap"

	"ShowroomDB/cli"
	"ShowroomDB/config"
	"ShowroomDB/registry"
	"ShowroomDB/types"
)

var (
	configPath   = flag.String("config", "", "path to a YAML config")
	numCars      = flag.Int("cars", 60, "cars per showroom")
	numSales     = flag.Int("salespersons", 4, "salespersons per showroom")
	soldFraction = flag.Float64("sold", 0.4, "fraction of cars sold")
	seed         = flag.Uint64("seed", 1, "random seed for prices and sales")
	dump         = flag.Bool("dump", false, "print the sold-cars index level by level")
	asJSON       = flag.Bool("json", false, "print the report as JSON")
)

var models = []string{"Nexon", "Creta", "City", "Swift", "Seltos", "XUV700", "Punch"}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	reg, err := registry.New(cfg, logger)
	if err != nil {
		logger.Fatal("registry", zap.Error(err))
	}
	defer reg.Close()

	rng := rand.New(rand.NewPCG(*seed, 0))
	if err := populate(reg, rng); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	report(reg)

	if *dump {
		cli.Dump(os.Stdout, reg.SoldCars().Tree())
	}
}

func populate(reg *registry.Registry, rng *rand.Rand) error {
	for s := 1; s <= reg.ShowroomCount(); s++ {
		err := reg.AddShowroom(&types.Showroom{
			ID:           s,
			Name:         faker.Word() + " Motors",
			Manufacturer: faker.LastName(),
		})
		if err != nil {
			return err
		}

		var staff []*types.Salesperson
		for p := 1; p <= *numSales; p++ {
			sp := &types.Salesperson{ID: s*100 + p, Name: faker.Name()}
			if err := reg.AddSalesperson(s, sp); err != nil {
				return err
			}
			staff = append(staff, sp)
		}

		for c := 0; c < *numCars; c++ {
			car := &types.Car{
				VIN:   fmt.Sprintf("VIN%d%05d", s, c),
				Name:  models[rng.IntN(len(models))],
				Color: faker.Word(),
				Price: 5 + float64(rng.IntN(2000))/100,
				Fuel:  types.FuelType(rng.IntN(5)),
				Body:  types.CarType(rng.IntN(3)),
			}
			if err := reg.AddCar(s, car); err != nil {
				return err
			}
			if rng.Float64() >= *soldFraction {
				continue
			}
			if err := sell(reg, rng, s, car, staff[rng.IntN(len(staff))]); err != nil {
				return err
			}
		}
	}
	return nil
}

// sell records a sale with a fake buyer. Commission is the flat 2%.
func sell(reg *registry.Registry, rng *rand.Rand, showroomID int, car *types.Car, sp *types.Salesperson) error {
	if _, err := reg.MarkSold(car.VIN); err != nil {
		return err
	}
	sp.NumSales++
	sp.SalesAchieved += car.Price
	sp.Commission += 0.02 * car.Price

	cust := &types.Customer{
		Name:           faker.Name(),
		Mobile:         faker.Phonenumber(),
		Address:        faker.Word() + " Road",
		VIN:            car.VIN,
		RegistrationNo: fmt.Sprintf("KA%02d-%04d", showroomID, rng.IntN(10000)),
		Payment:        types.Cash,
	}
	if rng.IntN(2) == 0 {
		down := car.Price * (types.MinDownPayment + 0.3*rng.Float64())
		if err := cust.FinanceLoan(car.Price, down, []int{36, 60, 84}[rng.IntN(3)]); err != nil {
			return err
		}
	}

	err := reg.AddCustomer(types.SalespersonKey(showroomID, sp.ID), cust)
	if errors.Is(err, registry.ErrDuplicateKey) {
		// faker repeated a mobile number for this salesperson
		return nil
	}
	return err
}

// summary is the -json form of the report.
type summary struct {
	Cars          int                `json:"cars"`
	Available     int                `json:"available"`
	Sold          int                `json:"sold"`
	Showrooms     []*types.Showroom  `json:"showrooms"`
	Forecasts     map[int]float64    `json:"forecasts"`
	PopularModel  string             `json:"popular_model,omitempty"`
	PopularSold   int                `json:"popular_sold,omitempty"`
	PopularCar    *types.Car         `json:"popular_car,omitempty"`
	Top           *types.Salesperson `json:"top_salesperson,omitempty"`
	TopShowroom   int                `json:"top_showroom,omitempty"`
	LoanCustomers []*types.Customer  `json:"loan_customers_36_48"`
}

func collect(reg *registry.Registry) summary {
	sum := summary{
		Cars:          reg.Cars().Len(),
		Available:     reg.AvailableCars().Len(),
		Sold:          reg.SoldCars().Len(),
		Showrooms:     reg.Showrooms().Values(),
		Forecasts:     make(map[int]float64),
		LoanCustomers: reg.CustomersWithLoanTenure(36, 48),
	}
	for _, s := range sum.Showrooms {
		if f, err := reg.PredictNextMonthSales(s.ID); err == nil {
			sum.Forecasts[s.ID] = f
		}
	}
	if best, ok := reg.MostPopularModel(); ok {
		sum.PopularModel, sum.PopularSold, sum.PopularCar = best.Model, best.Sold, best.Example
	}
	sum.Top, sum.TopShowroom, _ = reg.AwardExtraIncentive()
	return sum
}

func report(reg *registry.Registry) {
	sum := collect(reg)
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sum); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	fmt.Printf("cars=%d available=%d sold=%d customer-indexes=%d\n",
		sum.Cars, sum.Available, sum.Sold, len(reg.CustomerIndexKeys()))
	for _, s := range sum.Showrooms {
		fmt.Printf("  showroom %d %-20s total=%d available=%d sold=%d sales=%.2f forecast=%.2f\n",
			s.ID, s.Name, s.TotalCars, s.AvailableCars, s.SoldCars, s.TotalSales, sum.Forecasts[s.ID])
	}
	if sum.PopularCar != nil {
		fmt.Printf("most popular model: %s (%d sold, e.g. %s)\n", sum.PopularModel, sum.PopularSold, sum.PopularCar.VIN)
	}
	if sum.Top != nil {
		fmt.Printf("top salesperson: %s of showroom %d with %.2f lakhs (extra incentive %.2f)\n",
			sum.Top.Name, sum.TopShowroom, sum.Top.SalesAchieved, 0.01*sum.Top.SalesAchieved)
	}
	if sps, err := reg.SalespersonsInRange(1, 50, 200); err == nil {
		fmt.Printf("showroom 1 salespersons with 50-200 lakhs: %d\n", len(sps))
	}
	fmt.Printf("loan customers with 36-48 month EMI: %d\n", len(sum.LoanCustomers))

	if merged, err := reg.MergedCustomers(); err == nil {
		fmt.Printf("merged customer index: ")
		cli.Stats(os.Stdout, merged)
	}
}
