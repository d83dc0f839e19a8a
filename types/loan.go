package types

import (
	"math"

	"github.com/cockroachdb/errors"
)

var ErrInvalidLoan = errors.New("invalid loan")

// MinDownPayment is the fraction of the car price a loan buyer pays upfront.
const MinDownPayment = 0.2

// LoanRate returns the annual interest rate in percent for an EMI tenure.
// Only 36, 60 and 84 month plans are offered.
func LoanRate(months int) (float64, error) {
	switch months {
	case 36:
		return 8.50, nil
	case 60:
		return 8.75, nil
	case 84:
		return 9.00, nil
	}
	return 0, errors.Wrapf(ErrInvalidLoan, "no %d month plan", months)
}

// MonthlyEMI is the standard amortised instalment for principal (rupees)
// at annualRate percent over months.
func MonthlyEMI(principal, annualRate float64, months int) float64 {
	r := annualRate / (12 * 100)
	f := math.Pow(1+r, float64(months))
	return principal * r * f / (f - 1)
}

// FinanceLoan turns c into a loan purchase of a car costing price lakhs.
func (c *Customer) FinanceLoan(price, downPayment float64, months int) error {
	if downPayment < MinDownPayment*price || downPayment > price {
		return errors.Wrapf(ErrInvalidLoan, "down payment %.2f for price %.2f", downPayment, price)
	}
	rate, err := LoanRate(months)
	if err != nil {
		return err
	}
	c.Payment = Loan
	c.EMIMonths = months
	c.DownPayment = downPayment
	c.LoanAmount = price - downPayment
	c.EMIAmount = MonthlyEMI(c.LoanAmount*100000, rate, months)
	return nil
}
