package utils

import "math"

// Macros holds kcal plus macro grams, either per 100 g (catalog values)
// or as computed totals.
type Macros struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// NutritionItem pairs an ingredient's per-100g macros with a quantity in grams.
type NutritionItem struct {
	Per100g   Macros
	QuantityG float64
}

// Nutrition is the computed result for a recipe.
type Nutrition struct {
	Total      Macros `json:"total"`
	PerServing Macros `json:"perServing"`
}

// AggregateNutrition sums the item macros scaled by quantity/100 and divides by
// servings. Every emitted value is rounded to one decimal place, half away from
// zero. Inputs are assumed validated upstream (servings >= 1, quantities > 0).
func AggregateNutrition(items []NutritionItem, servings int) Nutrition {
	var total Macros
	for _, it := range items {
		f := it.QuantityG / 100.0
		total.Kcal += it.Per100g.Kcal * f
		total.Protein += it.Per100g.Protein * f
		total.Carbs += it.Per100g.Carbs * f
		total.Fat += it.Per100g.Fat * f
	}

	s := float64(servings)
	return Nutrition{
		Total: roundMacros(total),
		PerServing: roundMacros(Macros{
			Kcal:    total.Kcal / s,
			Protein: total.Protein / s,
			Carbs:   total.Carbs / s,
			Fat:     total.Fat / s,
		}),
	}
}

// round1 rounds to one decimal, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func roundMacros(m Macros) Macros {
	return Macros{
		Kcal:    round1(m.Kcal),
		Protein: round1(m.Protein),
		Carbs:   round1(m.Carbs),
		Fat:     round1(m.Fat),
	}
}
