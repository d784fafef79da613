package entity

import "github.com/shopspring/decimal"

// Plan is a subscription plan offered on the pricing screen.
type Plan struct {
	ID       string
	Name     string
	OldPrice decimal.Decimal
	NewPrice decimal.Decimal
	Period   string
	Discount string
	Features []string
}

// Plans is the fixed pricing catalog, in display order.
var Plans = []Plan{
	{
		ID:       "elite-monthly",
		Name:     "Elite Monthly Plan",
		OldPrice: decimal.NewFromInt(7999),
		NewPrice: decimal.NewFromInt(2999),
		Period:   "month",
		Discount: "Save 62% – Limited Time Offer",
		Features: []string{
			"Unlimited general cardiologist appointments",
			"VIP Access: 1 Senior Cardiologist Consultation per month (Priority Booking)",
			"24/7 AI-Powered Cardiologist Chatbot (Instant Heart Health Insights)",
			"Emergency Hospital Booking (Direct Coordination for Urgent Cases)",
			"MediLocker: Secure digital storage for medical records",
		},
	},
	{
		ID:       "executive-quarterly",
		Name:     "Executive Quarterly Plan",
		OldPrice: decimal.NewFromInt(22999),
		NewPrice: decimal.NewFromInt(7499),
		Period:   "3 months",
		Discount: "Save 67% – Limited Time Offer",
		Features: []string{
			"Unlimited general cardiologist appointments",
			"Comprehensive Heart Check-in with a Senior Cardiologist – 2 times per quarter",
			"Complimentary second-opinion consultation (One-time per quarter)",
			"VIP Hospital Coordination Support (Faster Emergency Assistance)",
		},
	},
	{
		ID:       "platinum-annual",
		Name:     "Platinum Annual Plan",
		OldPrice: decimal.NewFromInt(79999),
		NewPrice: decimal.NewFromInt(24999),
		Period:   "year",
		Discount: "Save 78% – Limited Time Offer",
		Features: []string{
			"Unlimited general cardiologist appointments",
			"VIP Senior Cardiologist Consultations: 12 per year (Book Anytime, No Monthly Restriction)",
			"Unlimited Emergency Hospital Bookings (Direct Coordination for Urgent Cases)",
			"AI-driven preventive health risk analysis (Proactive Heart Health Management)",
			"VIP concierge service (Seamless Doctor & Hospital Coordination)",
		},
	},
}

// FindPlan returns the plan with the given id, or nil.
func FindPlan(id string) *Plan {
	for i := range Plans {
		if Plans[i].ID == id {
			return &Plans[i]
		}
	}
	return nil
}
