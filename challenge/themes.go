package challenge

import (
	"errors"
	"fmt"
)

var ErrUnknownTheme = errors.New("unknown challenge theme")

type Theme struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`

	instruction string
	closing     string
}

var Themes = []Theme{
	{
		ID:          "decision-making",
		Title:       "Gamified Decision-Making Challenges",
		Categories:  []string{"High Waste", "Low Sales", "Peak Inefficiencies", "Staff Turnover", "Menu Pricing"},
		instruction: DecisionMakingPrompt,
		closing:     DecisionMakingClosing,
	},
	{
		ID:          "scenario-simulation",
		Title:       "AI-Generated Scenario Simulations",
		Categories:  []string{"Staff Shortages", "Inventory Issues", "Equipment Failure", "Supplier Delays"},
		instruction: ScenarioSimulationPrompt,
		closing:     ScenarioSimulationClosing,
	},
	{
		ID:          "sustainability",
		Title:       "AI-Driven Sustainability Challenges",
		Categories:  []string{"Waste Reduction", "Energy Efficiency", "Water Conservation", "Sustainable Sourcing"},
		instruction: SustainabilityPrompt,
		closing:     SustainabilityClosing,
	},
	{
		ID:          "peak-hours",
		Title:       "Dynamic AI Adjustments for Peak Hours",
		Categories:  []string{"Lunch Rush", "Dinner Rush", "Weekend Brunch", "Holiday Season"},
		instruction: PeakHoursPrompt,
		closing:     PeakHoursClosing,
	},
}

func Lookup(id string) (Theme, error) {
	for _, theme := range Themes {
		if theme.ID == id {
			return theme, nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
}

// HasCategory reports whether category is one of the theme's predefined
// categories. Anything else is still accepted as free text.
func (t Theme) HasCategory(category string) bool {
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}

	return false
}
