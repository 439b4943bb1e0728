// ABOUTME: NutrientProfile value type and nutrient metric keys.
// ABOUTME: Profiles combine by field-wise addition; absent sugar reads as 0.
package models

import "fmt"

// NutrientProfile holds the macro breakdown for a single food.
// Sugar is optional in stored data and defaults to 0 when absent.
type NutrientProfile struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fiber    float64 `json:"fiber"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar,omitempty"`
}

// Add returns the field-wise sum of two profiles.
func (p NutrientProfile) Add(o NutrientProfile) NutrientProfile {
	return NutrientProfile{
		Calories: p.Calories + o.Calories,
		Protein:  p.Protein + o.Protein,
		Fiber:    p.Fiber + o.Fiber,
		Carbs:    p.Carbs + o.Carbs,
		Fat:      p.Fat + o.Fat,
		Sugar:    p.Sugar + o.Sugar,
	}
}

// Validate rejects negative nutrient values.
func (p NutrientProfile) Validate() error {
	for _, key := range AllMetricKeys {
		if p.Value(key) < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
	}
	return nil
}

// MetricKey identifies a single charted nutrient field.
type MetricKey string

const (
	MetricCalories MetricKey = "calories"
	MetricProtein  MetricKey = "protein"
	MetricFiber    MetricKey = "fiber"
	MetricCarbs    MetricKey = "carbs"
	MetricFat      MetricKey = "fat"
	MetricSugar    MetricKey = "sugar"
)

// MetricUnits maps metric keys to their display units.
var MetricUnits = map[MetricKey]string{
	MetricCalories: "kcal",
	MetricProtein:  "g",
	MetricFiber:    "g",
	MetricCarbs:    "g",
	MetricFat:      "g",
	MetricSugar:    "g",
}

// AllMetricKeys returns all valid metric keys.
var AllMetricKeys = []MetricKey{
	MetricCalories, MetricProtein, MetricFiber,
	MetricCarbs, MetricFat, MetricSugar,
}

// IsValidMetricKey checks if a string is a valid metric key.
func IsValidMetricKey(s string) bool {
	for _, k := range AllMetricKeys {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Value returns the profile field named by key.
func (p NutrientProfile) Value(key MetricKey) float64 {
	switch key {
	case MetricCalories:
		return p.Calories
	case MetricProtein:
		return p.Protein
	case MetricFiber:
		return p.Fiber
	case MetricCarbs:
		return p.Carbs
	case MetricFat:
		return p.Fat
	case MetricSugar:
		return p.Sugar
	}
	return 0
}
