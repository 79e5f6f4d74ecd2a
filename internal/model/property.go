package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType classifies a rental property.
type PropertyType string

const (
	PropertyApartment    PropertyType = "APARTMENT"
	PropertyHouse        PropertyType = "HOUSE"
	PropertyCondo        PropertyType = "CONDO"
	PropertyDuplex       PropertyType = "DUPLEX"
	PropertySingleFamily PropertyType = "SINGLE_FAMILY"
)

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyDuplex, PropertySingleFamily:
		return PropertyType(s), nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

// Property represents the properties table.
type Property struct {
	ID            int64            `json:"id"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	State         string           `json:"state"`
	ZipCode       string           `json:"zip_code"`
	PropertyType  PropertyType     `json:"property_type"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     decimal.Decimal  `json:"bathrooms"`
	SquareFeet    *int             `json:"square_feet,omitempty"`
	MonthlyRent   decimal.Decimal  `json:"monthly_rent"`
	PurchaseDate  *Date            `json:"purchase_date,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
