package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateNutritionChickenExample(t *testing.T) {
	// 200 g of a 165 kcal/100g ingredient across 2 servings.
	items := []NutritionItem{
		{Per100g: Macros{Kcal: 165, Protein: 31, Carbs: 0, Fat: 3.6}, QuantityG: 200},
	}

	got := AggregateNutrition(items, 2)

	assert.Equal(t, 330.0, got.Total.Kcal)
	assert.Equal(t, 62.0, got.Total.Protein)
	assert.Equal(t, 7.2, got.Total.Fat)
	assert.Equal(t, 165.0, got.PerServing.Kcal)
	assert.Equal(t, 31.0, got.PerServing.Protein)
	assert.Equal(t, 3.6, got.PerServing.Fat)
}

func TestAggregateNutritionIsLinear(t *testing.T) {
	a := []NutritionItem{
		{Per100g: Macros{Kcal: 52, Protein: 0.3, Carbs: 14, Fat: 0.2}, QuantityG: 150},
	}
	b := []NutritionItem{
		{Per100g: Macros{Kcal: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}, QuantityG: 120},
		{Per100g: Macros{Kcal: 884, Protein: 0, Carbs: 0, Fat: 100}, QuantityG: 10},
	}

	sep := AggregateNutrition(a, 1)
	sepB := AggregateNutrition(b, 1)
	joint := AggregateNutrition(append(append([]NutritionItem{}, a...), b...), 1)

	assert.InDelta(t, sep.Total.Kcal+sepB.Total.Kcal, joint.Total.Kcal, 0.11)
	assert.InDelta(t, sep.Total.Protein+sepB.Total.Protein, joint.Total.Protein, 0.11)
	assert.InDelta(t, sep.Total.Carbs+sepB.Total.Carbs, joint.Total.Carbs, 0.11)
	assert.InDelta(t, sep.Total.Fat+sepB.Total.Fat, joint.Total.Fat, 0.11)
}

func TestAggregateNutritionEmpty(t *testing.T) {
	got := AggregateNutrition(nil, 4)
	assert.Equal(t, Macros{}, got.Total)
	assert.Equal(t, Macros{}, got.PerServing)
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.1, round1(0.05))
	assert.Equal(t, -0.1, round1(-0.05))
	assert.Equal(t, 2.5, round1(2.45))
	assert.Equal(t, 1.2, round1(1.24))
}
