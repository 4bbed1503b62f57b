package pricing

import (
	"fmt"
	"strings"
)

// Catalog holds the ordered plans and FAQ entries. It is immutable once built.
type Catalog struct {
	plans []Plan
	faqs  []FAQ
}

// PlanView is a plan resolved for one billing period.
type PlanView struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	Popular     bool     `json:"popular"`
	Custom      bool     `json:"custom"`
}

// View is everything the pricing section renders for a billing period.
type View struct {
	Billing   Billing    `json:"billing"`
	Toggle    Billing    `json:"-"`
	SaveBadge string     `json:"saveBadge,omitempty"`
	Plans     []PlanView `json:"plans"`
	FAQs      []FAQ      `json:"faqs"`
}

// Annual reports whether the view is billed annually.
func (v View) Annual() bool { return v.Billing == Annual }

// NewCatalog validates plans and returns an immutable catalog.
func NewCatalog(plans []Plan, faqs []FAQ) (*Catalog, error) {
	seen := map[string]struct{}{}
	c := &Catalog{}
	for _, p := range plans {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: plan without name", ErrInvalidCatalog)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate plan %q", ErrInvalidCatalog, name)
		}
		seen[name] = struct{}{}
		if !p.IsCustom() && !strings.HasPrefix(p.Price, "$") {
			return nil, fmt.Errorf("%w: plan %q price %q must be a dollar amount or %q", ErrInvalidCatalog, name, p.Price, customPrice)
		}
		c.plans = append(c.plans, clonePlan(p))
	}
	c.faqs = append(c.faqs, faqs...)
	return c, nil
}

// Plans returns a copy of the plans in display order.
func (c *Catalog) Plans() []Plan {
	if c == nil {
		return []Plan{}
	}
	out := make([]Plan, len(c.plans))
	for i, p := range c.plans {
		out[i] = clonePlan(p)
	}
	return out
}

// View resolves every plan for billing.
func (c *Catalog) View(b Billing) View {
	v := View{
		Billing: b,
		Toggle:  b.Toggle(),
		Plans:   []PlanView{},
		FAQs:    []FAQ{},
	}
	if b == Annual {
		v.SaveBadge = fmt.Sprintf("Save %d%%", int(AnnualDiscount*100))
	}
	if c == nil {
		return v
	}
	for _, p := range c.plans {
		v.Plans = append(v.Plans, PlanView{
			Name:        p.Name,
			Price:       DisplayPrice(p, b),
			Period:      DisplayPeriod(p, b),
			Description: p.Description,
			Features:    append([]string(nil), p.Features...),
			CTA:         p.CTA,
			Popular:     p.Popular,
			Custom:      p.IsCustom(),
		})
	}
	v.FAQs = append(v.FAQs, c.faqs...)
	return v
}
