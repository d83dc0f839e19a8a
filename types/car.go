package types

// Car is indexed by VIN in the all-cars index and in exactly one of the
// available or sold indexes.
type Car struct {
	VIN        string   `json:"vin"`
	Name       string   `json:"name"` // model name
	Color      string   `json:"color"`
	Price      float64  `json:"price"` // lakhs
	Fuel       FuelType `json:"fuel"`
	Body       CarType  `json:"body"`
	Sold       bool     `json:"sold"`
	ShowroomID int      `json:"showroom_id"`
}

func (c *Car) Status() string {
	if c.Sold {
		return "Sold"
	}
	return "Available"
}
