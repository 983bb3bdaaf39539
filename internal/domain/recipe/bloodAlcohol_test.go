package recipe_test

import (
	"math"
	"testing"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/stretchr/testify/require"
)

func TestCalculateBAC(t *testing.T) {
	r := newMargarita(t)
	tequila := mustIngredient(t, r, "Tequila", 60, 40)
	lime := mustIngredient(t, r, "Lime Juice", 25, 0)
	require.NoError(t, r.SetIngredients([]recipe.Ingredient{tequila, lime}))

	t.Run("Male", func(t *testing.T) {
		bac, err := r.CalculateBAC(drinker{sex: recipe.SexMale, weight: 70})
		require.NoError(t, err)
		require.InDelta(t, 0.0398, bac, 0.0005)
	})

	t.Run("Female", func(t *testing.T) {
		bac, err := r.CalculateBAC(drinker{sex: recipe.SexFemale, weight: 70})
		require.NoError(t, err)
		require.InDelta(t, 18.9468/(70000*0.55)*100, bac, 1e-9)
	})

	t.Run("Dose", func(t *testing.T) {
		require.InDelta(t, 18.9468, r.AlcoholGrams(), 1e-9)
	})

	t.Run("No alcohol", func(t *testing.T) {
		virgin := newMargarita(t)
		require.NoError(t, virgin.SetIngredients([]recipe.Ingredient{
			mustIngredient(t, virgin, "Lime Juice", 30, 0),
			mustIngredient(t, virgin, "Agave Syrup", 15, 0),
		}))

		bac, err := virgin.CalculateBAC(drinker{sex: recipe.SexFemale, weight: 55})
		require.NoError(t, err)
		require.Zero(t, bac)
	})

	t.Run("Does not mutate", func(t *testing.T) {
		before := r.Record()
		_, err := r.CalculateBAC(drinker{sex: recipe.SexMale, weight: 80})
		require.NoError(t, err)
		require.Equal(t, before, r.Record())
	})

	testCases := []struct {
		name     string
		consumer recipe.Consumer
	}{
		{"NoUser", nil},
		{"NoBiologicalSex", drinker{weight: 70}},
		{"NoWeight", drinker{sex: recipe.SexMale}},
		{"NegativeWeight", drinker{sex: recipe.SexFemale, weight: -4}},
		{"NaNWeight", drinker{sex: recipe.SexMale, weight: math.NaN()}},
		{"InfiniteWeight", drinker{sex: recipe.SexMale, weight: math.Inf(1)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bac, err := r.CalculateBAC(tc.consumer)
			require.ErrorIs(t, err, recipe.ErrMissingAttribute)
			require.Zero(t, bac)
		})
	}

	t.Run("Missing attribute regardless of ingredients", func(t *testing.T) {
		_, err := newMargarita(t).CalculateBAC(drinker{weight: 70})
		require.ErrorIs(t, err, recipe.ErrMissingAttribute)
	})
}
