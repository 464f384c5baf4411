package challenge

import (
	"fmt"
	"strings"

	"github.com/imkonsowa/restaurants-challenges/models"
)

type Normalizer struct {
	// AnnotateErrors prefixes the fallback with the upstream error detail.
	AnnotateErrors bool
}

// Normalize never fails: every result maps to a displayable string.
func (n Normalizer) Normalize(result models.GenerationResult, fallback string) string {
	if result.Err != nil {
		if n.AnnotateErrors {
			return fmt.Sprintf("AI error: %s\n%s", result.Err.Error(), fallback)
		}

		return fallback
	}

	text := strings.TrimSpace(result.Text)
	if text == "" {
		return fallback
	}

	return text
}

func Normalize(result models.GenerationResult, fallback string) string {
	return Normalizer{}.Normalize(result, fallback)
}
