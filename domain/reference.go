// Package domain contains core concepts of the farm advisor.
// This file defines the read-only reference data shown next to the chat.
package domain

type PolicyStatus string

const (
	PolicyNew     PolicyStatus = "new"
	PolicyActive  PolicyStatus = "active"
	PolicyUpdated PolicyStatus = "updated"
)

// Policy is a government scheme record. BenefitAmount is optional.
type Policy struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Date          string
	Status        PolicyStatus
	BenefitAmount *string
	Eligibility   string
}

type WeatherSnapshot struct {
	Temperature string
	Humidity    string
	WindSpeed   string
	Condition   string
	Visibility  string
	Pressure    string
	UVIndex     string
}
