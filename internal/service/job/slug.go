package job

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify builds a URL slug from a listing title plus a short random
// suffix, so two companies posting "Software Engineer" never fight
// over the same slug.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "job"
	}
	if len(slug) > 80 {
		slug = strings.Trim(slug[:80], "-")
	}

	suffix := strings.Split(uuid.New().String(), "-")[0]
	return slug + "-" + suffix
}
