// ABOUTME: Daily aggregation of food and activity records.
// ABOUTME: Pure fold from the two collections into ordered per-day rollups.
package tracker

import (
	"sort"

	"github.com/harperreed/nosh/internal/models"
)

// Day is the derived per-date rollup of foods and activities.
type Day struct {
	Date           string                  `json:"date"`
	Entries        []models.FoodRecord     `json:"entries"`
	Activities     []models.ActivityRecord `json:"activities"`
	Totals         models.NutrientProfile  `json:"totals"`
	CaloriesBurned int                     `json:"calories_burned"`
}

// NetCalories returns consumed minus burned calories for the day.
func (d Day) NetCalories() float64 {
	return d.Totals.Calories - float64(d.CaloriesBurned)
}

// Aggregate folds the two record collections into per-day rollups, one Day
// per distinct date appearing in either input, sorted ascending by date.
// It is pure: the same inputs always produce the same output, element order
// included. Entries within a day are ordered by CreatedAt, tying on ID, so
// the result is a deterministic value of the inputs regardless of input order.
func Aggregate(foods []models.FoodRecord, activities []models.ActivityRecord) []Day {
	byDate := make(map[string]*Day)
	dayFor := func(date string) *Day {
		d, ok := byDate[date]
		if !ok {
			d = &Day{Date: date}
			byDate[date] = d
		}
		return d
	}

	for _, f := range foods {
		d := dayFor(f.Date)
		d.Entries = append(d.Entries, f)
	}
	for _, a := range activities {
		d := dayFor(a.Date)
		d.Activities = append(d.Activities, a)
	}

	days := make([]Day, 0, len(byDate))
	for _, d := range byDate {
		sort.Slice(d.Entries, func(i, j int) bool {
			ei, ej := d.Entries[i], d.Entries[j]
			if !ei.CreatedAt.Equal(ej.CreatedAt) {
				return ei.CreatedAt.Before(ej.CreatedAt)
			}
			return ei.ID.String() < ej.ID.String()
		})
		sort.Slice(d.Activities, func(i, j int) bool {
			ai, aj := d.Activities[i], d.Activities[j]
			if !ai.CreatedAt.Equal(aj.CreatedAt) {
				return ai.CreatedAt.Before(aj.CreatedAt)
			}
			return ai.ID.String() < aj.ID.String()
		})
		for _, e := range d.Entries {
			d.Totals = d.Totals.Add(e.Nutrients)
		}
		for _, a := range d.Activities {
			d.CaloriesBurned += a.CaloriesBurned
		}
		days = append(days, *d)
	}

	// Dates are ISO-sortable, so string order is chronological order.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

// DayFor returns the rollup for a single date. A date with no records yields
// an empty Day carrying only the date, so callers can always render a day view.
func DayFor(foods []models.FoodRecord, activities []models.ActivityRecord, date string) Day {
	for _, d := range Aggregate(foods, activities) {
		if d.Date == date {
			return d
		}
	}
	return Day{Date: date}
}
