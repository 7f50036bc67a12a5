package config

// Plan is one purchasable credit pack. The catalog is not persisted; it is
// built once at boot and injected wherever plans are needed, so deployments
// can swap it without touching the billing code.
type Plan struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	PriceMinor int64    `json:"price_minor"` // smallest currency unit
	Currency   string   `json:"currency"`
	Credits    int64    `json:"credits"`
	Features   []string `json:"features"`
}

type PlanCatalog struct {
	plans  []Plan
	byCode map[string]Plan
}

func NewPlanCatalog(plans []Plan) *PlanCatalog {
	byCode := make(map[string]Plan, len(plans))
	for _, p := range plans {
		byCode[p.Code] = p
	}
	return &PlanCatalog{plans: plans, byCode: byCode}
}

func (c *PlanCatalog) Find(code string) (Plan, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

func (c *PlanCatalog) All() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// DefaultPlans is the stock catalog.
func DefaultPlans() []Plan {
	return []Plan{
		{
			Code:       "basic",
			Name:       "Basic",
			PriceMinor: 1000,
			Currency:   "USD",
			Credits:    100,
			Features:   []string{"100 text generations", "50 image generations", "Standard support"},
		},
		{
			Code:       "pro",
			Name:       "Pro",
			PriceMinor: 2000,
			Currency:   "USD",
			Credits:    500,
			Features:   []string{"500 text generations", "200 image generations", "Priority support", "Faster response time"},
		},
		{
			Code:       "premium",
			Name:       "Premium",
			PriceMinor: 3000,
			Currency:   "USD",
			Credits:    1000,
			Features:   []string{"1000 text generations", "500 image generations", "24/7 VIP support", "Dedicated account manager"},
		},
	}
}
