package skills

import (
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"strings"
)

const DefaultMaxProfileSkills = 30

// Normalizer cleans free-text skill lists before they are stored.
// MaxEntries <= 0 disables the cap.
type Normalizer struct {
	MaxEntries int
}

func NewNormalizer(maxEntries int) Normalizer {
	return Normalizer{MaxEntries: maxEntries}
}

// Normalize trims entries, drops empty ones and removes case-insensitive duplicates,
// keeping the first spelling and the original order.
func (n Normalizer) Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	result := make([]string, 0, len(raw))

	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, item)

		if n.MaxEntries > 0 && len(result) == n.MaxEntries {
			break
		}
	}
	return result
}

// Coerce turns loosely typed values into strings. Values that have no string form
// come out empty and are later dropped by Normalize.
func Coerce(raw []any) []string {
	return lo.Map(raw, func(item any, _ int) string {
		return cast.ToString(item)
	})
}

// Canonical is the looser form used for matching: lower-cased, trimmed and with
// inner whitespace runs collapsed into one space.
func Canonical(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
