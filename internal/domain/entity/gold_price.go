package entity

import (
	"encoding/json"
)

// GoldPrice represents one gold price quotation from the /cenyzlota/
// endpoints: the price of 1 g of gold (1000 millesimal fineness) in PLN.
// The upstream field names are Polish ("data" = date, "cena" = price).
type GoldPrice struct {
	Date  string      `json:"data"`
	Price json.Number `json:"cena"`
}
