package recipe

import (
	"fmt"
	"math"
)

const (
	// EthanolDensity is the density of ethanol in g/mL.
	EthanolDensity = 0.78945

	// Widmark distribution ratios.
	MaleWidmarkConstant   = 0.68
	FemaleWidmarkConstant = 0.55
)

// Consumer is whoever drinks the recipe. A zero weight or SexUnset means the
// attribute is missing.
type Consumer interface {
	BiologicalSex() BiologicalSex
	WeightInKg() float64
}

// CalculateBAC estimates the blood alcohol content, as a percentage, that c
// reaches after drinking the whole recipe, using the Widmark equation with no
// elimination over time.
func (r *Recipe) CalculateBAC(c Consumer) (float64, error) {
	return bloodAlcoholContent(r.ingredients, c)
}

// AlcoholGrams is the total mass of ethanol in the recipe.
func (r *Recipe) AlcoholGrams() float64 {
	return doseInGrams(r.ingredients)
}

func doseInGrams(ingredients []Ingredient) float64 {
	var dose float64
	for _, i := range ingredients {
		dose += i.alcoholGrams()
	}
	return dose
}

func bloodAlcoholContent(ingredients []Ingredient, c Consumer) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: no user provided", ErrMissingAttribute)
	}
	sex := c.BiologicalSex()
	if sex == SexUnset {
		return 0, fmt.Errorf("%w: biological sex is not set", ErrMissingAttribute)
	}
	weight := c.WeightInKg()
	if !(weight > 0) || math.IsInf(weight, 1) {
		return 0, fmt.Errorf("%w: weight in kg is not set", ErrMissingAttribute)
	}

	widmark := FemaleWidmarkConstant
	if sex == SexMale {
		widmark = MaleWidmarkConstant
	}
	bodyWeightInGrams := weight * 1000

	return doseInGrams(ingredients) / (bodyWeightInGrams * widmark) * 100, nil
}
