package panels

import (
	"farm-advisor/domain"
	"strings"

	"github.com/samber/lo"
)

type StatusColor string

const (
	ColorGreen  StatusColor = "green"
	ColorBlue   StatusColor = "blue"
	ColorOrange StatusColor = "orange"
	ColorGray   StatusColor = "gray"
)

var policies = []domain.Policy{
	{
		ID:            "1",
		Title:         "PM-KISAN Direct Benefit Transfer",
		Description:   "Financial support of ₹6,000 per year to eligible farmer families",
		Category:      "Financial Support",
		Date:          "2024-01-15",
		Status:        domain.PolicyActive,
		BenefitAmount: lo.ToPtr("₹6,000/year"),
		Eligibility:   "Small & marginal farmers",
	},
	{
		ID:            "2",
		Title:         "Pradhan Mantri Fasal Bima Yojana",
		Description:   "Comprehensive crop insurance scheme for farmers",
		Category:      "Insurance",
		Date:          "2024-02-01",
		Status:        domain.PolicyUpdated,
		BenefitAmount: lo.ToPtr("Up to ₹2L coverage"),
		Eligibility:   "All farmers",
	},
	{
		ID:            "3",
		Title:         "Soil Health Card Scheme",
		Description:   "Free soil testing and nutrient management advice",
		Category:      "Soil Management",
		Date:          "2024-01-28",
		Status:        domain.PolicyNew,
		BenefitAmount: lo.ToPtr("Free service"),
		Eligibility:   "All farmers",
	},
	{
		ID:            "4",
		Title:         "Kisan Credit Card",
		Description:   "Easy access to institutional credit for farmers",
		Category:      "Credit",
		Date:          "2024-02-10",
		Status:        domain.PolicyActive,
		BenefitAmount: lo.ToPtr("Up to ₹3L loan"),
		Eligibility:   "Landholding farmers",
	},
	{
		ID:            "5",
		Title:         "Organic Farming Promotion",
		Description:   "Financial assistance for adopting organic farming practices",
		Category:      "Sustainable Agriculture",
		Date:          "2024-02-20",
		Status:        domain.PolicyNew,
		BenefitAmount: lo.ToPtr("₹50,000/hectare"),
		Eligibility:   "Certified organic farmers",
	},
}

// Policies returns a copy of the compiled-in list, unfiltered and in declaration order.
func Policies() []domain.Policy {
	return lo.Map(policies, func(p domain.Policy, _ int) domain.Policy {
		if p.BenefitAmount != nil {
			p.BenefitAmount = lo.ToPtr(*p.BenefitAmount)
		}
		return p
	})
}

// StatusLabel is the badge text for a status.
func StatusLabel(status domain.PolicyStatus) string {
	return strings.ToUpper(string(status))
}

// BenefitOrDash shows "-" for policies without a benefit amount.
func BenefitOrDash(p domain.Policy) string {
	return lo.FromPtrOr(p.BenefitAmount, "-")
}

func ColorFor(status domain.PolicyStatus) StatusColor {
	switch status {
	case domain.PolicyNew:
		return ColorGreen
	case domain.PolicyUpdated:
		return ColorBlue
	case domain.PolicyActive:
		return ColorOrange
	default:
		return ColorGray
	}
}
