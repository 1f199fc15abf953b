package panels

import (
	"bytes"
	"farm-advisor/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIconFor(t *testing.T) {
	tests := []struct {
		condition string
		expected  Icon
	}{
		{"Sunny", IconSun},
		{"mostly SUNNY", IconSun},
		{"Clear sky", IconSun},
		{"Partly Cloudy", IconCloud},
		{"Rain", IconCloud},
		{"", IconCloud},
	}
	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			require.Equal(t, tt.expected, IconFor(tt.condition))
		})
	}
}

func TestNewWeatherPanel(t *testing.T) {
	req := require.New(t)

	// Given no snapshot, the default sample is shown
	panel := NewWeatherPanel("Springfield", nil)
	req.Equal("Springfield", panel.Location)
	req.Equal(DefaultWeather, panel.Weather)
	req.Equal(IconCloud, panel.Icon)
	req.Equal(WeatherAdvice, panel.Advice)

	// Given a passed snapshot, it is shown as is
	sunny := DefaultWeather
	sunny.Condition = "Sunny"
	panel = NewWeatherPanel("Springfield", &sunny)
	req.Equal(sunny, panel.Weather)
	req.Equal(IconSun, panel.Icon)
}

func TestPolicies(t *testing.T) {
	req := require.New(t)

	list := Policies()
	req.Len(list, 5)
	req.Equal([]string{"1", "2", "3", "4", "5"}, []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID, list[4].ID})
	req.Equal("PM-KISAN Direct Benefit Transfer", list[0].Title)

	// When a caller mutates its copy
	list[0].Title = "changed"
	*list[0].BenefitAmount = "changed"

	// Then the compiled-in list is untouched
	again := Policies()
	req.Equal("PM-KISAN Direct Benefit Transfer", again[0].Title)
	req.Equal("₹6,000/year", *again[0].BenefitAmount)
}

func TestColorFor(t *testing.T) {
	req := require.New(t)
	req.Equal(ColorGreen, ColorFor(domain.PolicyNew))
	req.Equal(ColorBlue, ColorFor(domain.PolicyUpdated))
	req.Equal(ColorOrange, ColorFor(domain.PolicyActive))
	req.Equal(ColorGray, ColorFor("archived"))
}

func TestRenderWeather_IsPure(t *testing.T) {
	req := require.New(t)
	panel := NewWeatherPanel("Springfield", nil)

	var first, second bytes.Buffer
	req.NoError(RenderWeather(&first, panel))
	req.NoError(RenderWeather(&second, panel))

	req.Equal(first.String(), second.String())
	for _, s := range []string{"Springfield", "22°C", "Partly Cloudy", "65%", "12 km/h", "10 km", "1013 hPa", WeatherAdvice} {
		req.Contains(first.String(), s)
	}
}

func TestRenderPolicies_IsPure(t *testing.T) {
	req := require.New(t)

	var first, second bytes.Buffer
	req.NoError(RenderPolicies(&first, Policies()))
	req.NoError(RenderPolicies(&second, Policies()))

	req.Equal(first.String(), second.String())
	for _, s := range []string{"Kisan Credit Card", "ACTIVE", "UPDATED", "NEW", "Up to ₹3L loan", "Feb 10, 2024"} {
		req.Contains(first.String(), s)
	}
}

func TestRenderPolicies_MissingBenefit(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	req.NoError(RenderPolicies(&out, []domain.Policy{{ID: "x", Title: "No Benefit", Status: "draft", Date: "soon"}}))

	req.Contains(out.String(), "No Benefit")
	req.Contains(out.String(), "DRAFT")
	req.Contains(out.String(), "soon")
}

func TestIcon_Glyph(t *testing.T) {
	req := require.New(t)
	req.Equal("☀", IconFor("Clear").Glyph())
	req.Equal("☁", IconFor("Rain").Glyph())
}

func TestStatusLabelAndBenefit(t *testing.T) {
	req := require.New(t)
	amount := "₹6,000/year"

	req.Equal("UPDATED", StatusLabel(domain.PolicyUpdated))
	req.Equal("DRAFT", StatusLabel("draft"))
	req.Equal(amount, BenefitOrDash(domain.Policy{BenefitAmount: &amount}))
	req.Equal("-", BenefitOrDash(domain.Policy{}))
}
