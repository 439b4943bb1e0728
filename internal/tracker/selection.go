// ABOUTME: Bounded selection of nutrient metrics for charts and summaries.
// ABOUTME: Toggle keeps the selection between 1 and 4 keys, order preserved.
package tracker

import "github.com/harperreed/nosh/internal/models"

const (
	// MinSelected keeps the chart view from going empty.
	MinSelected = 1
	// MaxSelected keeps the chart view from overcrowding.
	MaxSelected = 4
)

// Selection is the ordered set of metric keys shown in charts and summaries.
type Selection []models.MetricKey

// DefaultSelection returns the initial metric selection.
func DefaultSelection() Selection {
	return Selection{models.MetricCalories, models.MetricProtein, models.MetricFiber}
}

// Contains reports whether key is in the selection.
func (s Selection) Contains(key models.MetricKey) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle adds key if absent or removes it if present, returning a new
// selection. An add that would exceed MaxSelected or a remove that would go
// below MinSelected is a no-op returning the selection unchanged. Insertion
// appends; removal preserves the order of the remainder.
func (s Selection) Toggle(key models.MetricKey) Selection {
	for i, k := range s {
		if k != key {
			continue
		}
		if len(s) <= MinSelected {
			return s
		}
		out := make(Selection, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}

	if len(s) >= MaxSelected {
		return s
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, key)
}
