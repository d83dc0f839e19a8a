package types

// Customer is indexed by mobile number in the customer index of the
// salesperson who made the sale.
type Customer struct {
	Name           string      `json:"name"`
	Mobile         string      `json:"mobile"`
	Address        string      `json:"address"`
	VIN            string      `json:"vin"` // car bought
	RegistrationNo string      `json:"registration_no"`
	Payment        PaymentType `json:"payment"`

	// loan details, zero for cash sales
	EMIMonths   int     `json:"emi_months,omitempty"`
	DownPayment float64 `json:"down_payment,omitempty"` // lakhs
	LoanAmount  float64 `json:"loan_amount,omitempty"`  // lakhs
	EMIAmount   float64 `json:"emi_amount,omitempty"`   // rupees per month
}
