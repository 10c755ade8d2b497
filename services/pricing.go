package services

import (
	"math"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// Fixed 30% upfront deposit policy.
	depositRate = 0.30
)

// Quote is the price breakdown for a room type and date range. Amounts are
// not rounded; two-decimal formatting happens at presentation.
type Quote struct {
	Nights  int     `json:"nights"`
	Rate    float64 `json:"rate"`
	Total   float64 `json:"total"`
	Deposit float64 `json:"deposit"`
}

type PricingService struct {
	catalog *Catalog
}

func NewPricingService(catalog *Catalog) *PricingService {
	return &PricingService{catalog: catalog}
}

func parseDate(iso string) (time.Time, error) {
	return time.Parse(dateLayout, iso)
}

// NightsBetween returns the whole-day difference between two calendar dates.
// The result may be zero or negative; positivity is the validator's job.
// Unparsable dates count as zero nights.
func NightsBetween(checkin, checkout string) int {
	in, err := parseDate(checkin)
	if err != nil {
		return 0
	}

	out, err := parseDate(checkout)
	if err != nil {
		return 0
	}

	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// Quote prices a stay. Pure: identical inputs always produce identical
// output. An unknown type key prices at rate 0; the validator rejects such
// candidates before a quote is treated as authoritative.
func (s *PricingService) Quote(typeKey, checkin, checkout string) Quote {
	nights := NightsBetween(checkin, checkout)

	var rate float64
	if def, ok := s.catalog.TypeByKey(typeKey); ok {
		rate = def.NightlyRate
	}

	total := float64(nights) * rate

	return Quote{
		Nights:  nights,
		Rate:    rate,
		Total:   total,
		Deposit: total * depositRate,
	}
}
