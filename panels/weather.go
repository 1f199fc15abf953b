// Package panels builds the read-only reference data shown beside the chat:
// a weather card for the farm's location and the list of government schemes.
// Everything here is a pure function of its inputs.
package panels

import (
	"farm-advisor/domain"
	"strings"
)

type Icon string

const (
	IconSun   Icon = "sun"
	IconCloud Icon = "cloud"
)

var glyphs = map[Icon]string{
	IconSun:   "☀",
	IconCloud: "☁",
}

// Glyph is the single character drawn for the icon in text renderings.
func (i Icon) Glyph() string {
	return glyphs[i]
}

const WeatherAdvice = "Good weather for field activities. Monitor soil moisture levels."

// DefaultWeather is the sample snapshot used when no data is passed in.
var DefaultWeather = domain.WeatherSnapshot{
	Temperature: "22°C",
	Humidity:    "65%",
	WindSpeed:   "12 km/h",
	Condition:   "Partly Cloudy",
	Visibility:  "10 km",
	Pressure:    "1013 hPa",
	UVIndex:     "6",
}

type WeatherPanel struct {
	Location string
	Weather  domain.WeatherSnapshot
	Icon     Icon
	Advice   string
}

// NewWeatherPanel falls back to DefaultWeather when snapshot is nil.
func NewWeatherPanel(location string, snapshot *domain.WeatherSnapshot) WeatherPanel {
	weather := DefaultWeather
	if snapshot != nil {
		weather = *snapshot
	}
	return WeatherPanel{
		Location: location,
		Weather:  weather,
		Icon:     IconFor(weather.Condition),
		Advice:   WeatherAdvice,
	}
}

// IconFor picks the sun for sunny or clear skies and the cloud otherwise.
func IconFor(condition string) Icon {
	c := strings.ToLower(condition)
	if strings.Contains(c, "sunny") || strings.Contains(c, "clear") {
		return IconSun
	}
	return IconCloud
}
