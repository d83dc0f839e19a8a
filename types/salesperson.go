package types

// DefaultSalesTarget is the monthly target in lakhs given to new salespersons.
const DefaultSalesTarget = 50.0

type Salesperson struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	SalesTarget    float64 `json:"sales_target"`   // lakhs
	SalesAchieved  float64 `json:"sales_achieved"` // lakhs
	Commission     float64 `json:"commission"`     // lakhs
	NumSales       int     `json:"num_sales"`
	ExtraIncentive bool    `json:"extra_incentive"`
}
