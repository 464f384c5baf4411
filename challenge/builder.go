package challenge

import (
	"errors"
	"strings"
)

var ErrInputMissing = errors.New("please choose a category or describe the challenge")

type Builder struct {
	theme Theme
}

func NewBuilder(theme Theme) *Builder {
	return &Builder{theme: theme}
}

// Build renders the instruction sent to the model. Whitespace-only input
// counts as empty.
func (b *Builder) Build(category, freeText string) (string, error) {
	category = strings.TrimSpace(category)
	freeText = strings.TrimSpace(freeText)

	if category == "" && freeText == "" {
		return "", ErrInputMissing
	}

	var prompt strings.Builder

	prompt.WriteString(b.theme.instruction + "\n")
	if category != "" {
		prompt.WriteString("- Category: " + category + "\n")
	}
	if freeText != "" {
		prompt.WriteString("- Scenario: " + freeText + "\n")
	}
	prompt.WriteString("\n")
	prompt.WriteString(b.theme.closing)

	return prompt.String(), nil
}
