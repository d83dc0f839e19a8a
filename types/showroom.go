package types

type Showroom struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Manufacturer  string  `json:"manufacturer"`
	TotalCars     int     `json:"total_cars"`
	AvailableCars int     `json:"available_cars"`
	SoldCars      int     `json:"sold_cars"`
	TotalSales    float64 `json:"total_sales"` // lakhs

	// trailing three months, most recent first
	MonthlySales [3]float64 `json:"monthly_sales"`
	MonthlyCars  [3]int     `json:"monthly_cars"`
}
