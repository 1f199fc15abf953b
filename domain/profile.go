// Package domain contains core concepts of the farm advisor.
// This file defines the farm profile and the choice lists offered by intake.
// No runtime, network, or UI logic should be added here.
package domain

// FarmProfile describes a farm. It is captured once per session and never mutated.
type FarmProfile struct {
	PlotSize string
	SoilType string
	Location string
	CropType string
}

// Credentials are transient: they are checked for presence and dropped.
type Credentials struct {
	Username string
	Password string
}

var SoilTypes = []string{
	"Clay",
	"Sandy",
	"Loamy",
	"Silty",
	"Peaty",
	"Chalky",
}

var CropTypes = []string{
	"Wheat",
	"Rice",
	"Corn",
	"Soybeans",
	"Cotton",
	"Tomatoes",
	"Potatoes",
	"Onions",
	"Other",
}
