package pricing

import (
	"errors"
	"math"
	"strings"

	"axiomai.dev/marketplace-web/internal/format"
)

// AnnualDiscount is the fraction taken off monthly prices when billed annually.
const AnnualDiscount = 0.20

// customPrice marks plans that are quoted by sales instead of listed.
const customPrice = "Custom"

// ErrInvalidCatalog is returned when plan data is unusable.
var ErrInvalidCatalog = errors.New("pricing: invalid catalog")

// Billing is the period prices are displayed for.
type Billing string

const (
	Monthly Billing = "monthly"
	Annual  Billing = "annual"
)

// ParseBilling maps user input to a Billing, defaulting to Monthly.
func ParseBilling(s string) Billing {
	switch Billing(strings.ToLower(strings.TrimSpace(s))) {
	case Annual:
		return Annual
	default:
		return Monthly
	}
}

// Toggle returns the other billing period.
func (b Billing) Toggle() Billing {
	if b == Annual {
		return Monthly
	}
	return Annual
}

// Plan is a subscription tier as authored in the fixture.
type Plan struct {
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Period      string   `json:"period" yaml:"period"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	CTA         string   `json:"cta" yaml:"cta"`
	Popular     bool     `json:"popular" yaml:"popular"`
}

// IsCustom reports whether the plan has no listed price.
func (p Plan) IsCustom() bool { return p.Price == customPrice }

// FAQ is a question shown under the plan grid.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// DisplayPrice returns the price label for billing.
// Annual prices are the monthly dollar amount less AnnualDiscount, rounded.
func DisplayPrice(p Plan, b Billing) string {
	if p.IsCustom() || b != Annual {
		return p.Price
	}
	amount := leadingInt(strings.Replace(p.Price, "$", "", 1))
	return format.USD(int64(math.Round(float64(amount) * (1 - AnnualDiscount))))
}

// DisplayPeriod returns the period suffix for billing, or "" for unpriced plans.
func DisplayPeriod(p Plan, b Billing) string {
	if p.Period == "" {
		return ""
	}
	if b == Annual {
		return "/year"
	}
	return p.Period
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func clonePlan(p Plan) Plan {
	cp := p
	if p.Features != nil {
		cp.Features = append([]string(nil), p.Features...)
	}
	return cp
}
