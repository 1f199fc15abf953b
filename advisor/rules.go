package advisor

import (
	"farm-advisor/domain"
	"fmt"
)

const FallbackRule = "general"

// Rule pairs trigger keywords with an advice template.
// Keywords are matched as case-insensitive substrings of the user's text.
type Rule struct {
	Name     string
	Keywords []string
	Render   func(p domain.FarmProfile) string
}

// DefaultRules returns the advice table in priority order: when a message
// triggers several rules the earliest one wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "irrigation",
			Keywords: []string{"irrigation", "water"},
			Render: func(p domain.FarmProfile) string {
				return fmt.Sprintf("For %s on %s soil, water deeply but less often and check soil moisture "+
					"at root depth before each irrigation. Early morning watering keeps evaporation losses low.",
					p.CropType, p.SoilType)
			},
		},
		{
			Name:     "fertilizer",
			Keywords: []string{"fertilizer", "nutrient"},
			Render: func(p domain.FarmProfile) string {
				return fmt.Sprintf("For %s soil, start with a soil test, then apply a balanced NPK fertilizer "+
					"(nitrogen, phosphorus, potassium) in split doses rather than all at once.",
					p.SoilType)
			},
		},
		{
			Name:     "pest",
			Keywords: []string{"pest", "disease"},
			Render: func(p domain.FarmProfile) string {
				return fmt.Sprintf("To protect your %s from pests and disease, scout the field every week, "+
					"remove infected plants early and prefer integrated pest management before spraying.",
					p.CropType)
			},
		},
		{
			Name:     "yield",
			Keywords: []string{"yield", "production"},
			Render: func(p domain.FarmProfile) string {
				return fmt.Sprintf("To raise production on your %s acre %s plot, use certified seed, keep "+
					"the recommended plant spacing and rotate crops to rest the soil between seasons.",
					p.PlotSize, p.CropType)
			},
		},
		{
			Name:     "weather",
			Keywords: []string{"weather", "climate"},
			Render: func(p domain.FarmProfile) string {
				return fmt.Sprintf("Keep an eye on the forecast: heavy rain, frost or heat waves can stress %s. "+
					"Delay spraying and harvesting when storms are expected.",
					p.CropType)
			},
		},
	}
}

func fallback(p domain.FarmProfile) string {
	return fmt.Sprintf("Thanks for your question! For %s on %s acres of %s soil in %s, I can help with "+
		"irrigation, fertilizer, pests, yield and weather. Could you tell me a bit more about what you need?",
		p.CropType, p.PlotSize, p.SoilType, p.Location)
}

// Greeting is the first bot message of a session.
func Greeting(p domain.FarmProfile) string {
	return fmt.Sprintf("Welcome! I see you have a %s acre %s soil farm in %s growing %s. How can I help you today?",
		p.PlotSize, p.SoilType, p.Location, p.CropType)
}
