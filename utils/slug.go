package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSlug dérive un identifiant public lisible à partir d'un nom.
func GenerateSlug(seed string) string {
	base := strings.ToLower(strings.TrimSpace(seed))
	base = strings.ReplaceAll(base, " ", "-")
	base = strings.ReplaceAll(base, "_", "-")
	if base == "" {
		base = "user"
	}
	return base + "-" + uuid.NewString()[:8]
}
