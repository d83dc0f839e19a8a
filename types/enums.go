package types

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrUnknownEnum = errors.New("unknown enum value")

type CarType uint8

const (
	Hatchback CarType = iota
	Sedan
	SUV
)

func (c CarType) String() string {
	switch c {
	case Hatchback:
		return "Hatchback"
	case Sedan:
		return "Sedan"
	case SUV:
		return "SUV"
	default:
		return "Unknown"
	}
}

func ParseCarType(s string) (CarType, error) {
	switch strings.ToLower(s) {
	case "hatchback":
		return Hatchback, nil
	case "sedan":
		return Sedan, nil
	case "suv":
		return SUV, nil
	}
	return Hatchback, errors.Wrapf(ErrUnknownEnum, "car type %q", s)
}

type FuelType uint8

const (
	Petrol FuelType = iota
	Diesel
	CNG
	Electric
	Hybrid
)

func (f FuelType) String() string {
	switch f {
	case Petrol:
		return "Petrol"
	case Diesel:
		return "Diesel"
	case CNG:
		return "CNG"
	case Electric:
		return "Electric"
	case Hybrid:
		return "Hybrid"
	default:
		return "Unknown"
	}
}

func ParseFuelType(s string) (FuelType, error) {
	switch strings.ToLower(s) {
	case "petrol":
		return Petrol, nil
	case "diesel":
		return Diesel, nil
	case "cng":
		return CNG, nil
	case "electric":
		return Electric, nil
	case "hybrid":
		return Hybrid, nil
	}
	return Petrol, errors.Wrapf(ErrUnknownEnum, "fuel type %q", s)
}

type PaymentType uint8

const (
	Cash PaymentType = iota
	Loan
)

func (p PaymentType) String() string {
	switch p {
	case Cash:
		return "Cash"
	case Loan:
		return "Loan"
	default:
		return "Unknown"
	}
}

func ParsePaymentType(s string) (PaymentType, error) {
	switch strings.ToLower(s) {
	case "cash":
		return Cash, nil
	case "loan":
		return Loan, nil
	}
	return Cash, errors.Wrapf(ErrUnknownEnum, "payment type %q", s)
}
