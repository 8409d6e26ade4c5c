package entity

import (
	"bytes"
	"strconv"
	"strings"
)

// Price tolerates the loose typing of the upstream catalog: numbers,
// quoted numbers, null and garbage all decode without error. Anything
// non-numeric becomes 0.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(f)
	return nil
}

// Product is the upstream catalog entity. The API is inconsistent about
// "title" vs "name"; DisplayTitle resolves that at the boundary so the
// ambiguity never leaks further in.
type Product struct {
	ID               int64  `json:"id"`
	Title            string `json:"title,omitempty"`
	Name             string `json:"name,omitempty"`
	Brand            string `json:"brand,omitempty"`
	Description      string `json:"description,omitempty"`
	Price            Price  `json:"price"`
	Category         string `json:"category,omitempty"`
	Image            string `json:"image,omitempty"`
	StockQuantity    int    `json:"stockQuantity,omitempty"`
	ReleaseDate      string `json:"releaseDate,omitempty"`
	ProductAvailable bool   `json:"productAvailable,omitempty"`
}

func (p Product) DisplayTitle() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return "Untitled"
}
