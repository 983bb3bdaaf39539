package recipe_test

import (
	"testing"
	"time"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/gmaschi/go-recipes-social/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

type drinker struct {
	sex    recipe.BiologicalSex
	weight float64
}

func (d drinker) BiologicalSex() recipe.BiologicalSex { return d.sex }
func (d drinker) WeightInKg() float64                 { return d.weight }

var lastUpdated = time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC)

func newMargarita(t *testing.T, opts ...recipe.Option) *recipe.Recipe {
	r, err := recipe.NewRecipe(
		"creator",
		"Margarita",
		[]recipe.TasteProfile{recipe.TasteSour, recipe.TasteSweet},
		recipe.Public,
		"Classic margarita recipe",
		lastUpdated,
		opts...,
	)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func mustIngredient(t *testing.T, r *recipe.Recipe, name string, volume, abv float64) recipe.Ingredient {
	i, err := recipe.NewIngredient(r, name, volume, abv)
	require.NoError(t, err)
	return i
}

func mustStep(t *testing.T, r *recipe.Recipe, n int, description string) recipe.Step {
	s, err := recipe.NewStep(r, n, description)
	require.NoError(t, err)
	return s
}

func TestNewRecipe(t *testing.T) {
	t.Run("Valid recipe", func(t *testing.T) {
		before := time.Now().UTC()
		r := newMargarita(t)

		require.NotZero(t, r.ID())
		require.Equal(t, "creator", r.Creator())
		require.Equal(t, "Margarita", r.Title())
		require.Equal(t, []recipe.TasteProfile{recipe.TasteSour, recipe.TasteSweet}, r.TasteProfiles())
		require.Equal(t, recipe.Public, r.Visibility())
		require.True(t, r.IsPublic())
		require.Equal(t, lastUpdated, r.TimeLastUpdated())
		require.WithinDuration(t, before, r.TimeCreated(), time.Second)
		require.Empty(t, r.Ingredients())
		require.Empty(t, r.Steps())

		description, err := r.Description()
		require.NoError(t, err)
		require.Equal(t, "Classic margarita recipe", description)
	})

	t.Run("Distinct IDs", func(t *testing.T) {
		require.NotEqual(t, newMargarita(t).ID(), newMargarita(t).ID())
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		testCases := []struct {
			name       string
			creator    string
			title      string
			profiles   []recipe.TasteProfile
			visibility recipe.Visibility
		}{
			{"NoCreator", "", "Margarita", nil, recipe.Public},
			{"NoTitle", "creator", "", nil, recipe.Public},
			{"UnknownTasteProfile", "creator", "Margarita", []recipe.TasteProfile{"FIZZY"}, recipe.Public},
			{"UnknownVisibility", "creator", "Margarita", nil, recipe.Visibility("SECRET")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := recipe.NewRecipe(tc.creator, tc.title, tc.profiles, tc.visibility, "", lastUpdated)
				require.ErrorIs(t, err, recipe.ErrInvalidArgument)
				require.Nil(t, r)
			})
		}
	})

	t.Run("Initial collections skip collection rules", func(t *testing.T) {
		base := newMargarita(t)
		tequila := mustIngredient(t, base, "Tequila", 60, 40)
		step := mustStep(t, base, 1, "Shake")

		r := newMargarita(t, recipe.WithIngredients(tequila), recipe.WithSteps(step, step))
		require.Equal(t, []recipe.Ingredient{tequila}, r.Ingredients())
		require.Len(t, r.Steps(), 2)
	})

	t.Run("Initial collections reject invalid entries", func(t *testing.T) {
		r, err := recipe.NewRecipe("creator", "Margarita", nil, recipe.Public, "", lastUpdated,
			recipe.WithIngredients(recipe.Ingredient{}))
		require.ErrorIs(t, err, recipe.ErrInvalidArgument)
		require.Nil(t, r)
	})
}

func TestRecipeSetters(t *testing.T) {
	r := newMargarita(t)

	require.NoError(t, r.SetTitle("Spicy Margarita"))
	require.Equal(t, "Spicy Margarita", r.Title())
	require.ErrorIs(t, r.SetTitle(""), recipe.ErrInvalidArgument)
	require.Equal(t, "Spicy Margarita", r.Title())

	r.SetDescription("Spicy twist on classic margarita")
	description, err := r.Description()
	require.NoError(t, err)
	require.Equal(t, "Spicy twist on classic margarita", description)

	profiles := []recipe.TasteProfile{recipe.TasteSour, recipe.TasteSweet, recipe.TasteHot}
	require.NoError(t, r.SetTasteProfiles(profiles))
	require.Equal(t, profiles, r.TasteProfiles())
	profiles[0] = recipe.TasteBitter
	require.Equal(t, recipe.TasteSour, r.TasteProfiles()[0])

	require.NoError(t, r.SetVisibility(recipe.FriendsOnly))
	require.False(t, r.IsPublic())
	require.ErrorIs(t, r.SetVisibility("HIDDEN"), recipe.ErrInvalidArgument)
	require.Equal(t, recipe.FriendsOnly, r.Visibility())

	newDate := time.Date(2024, 2, 22, 0, 0, 0, 0, time.UTC)
	r.SetTimeLastUpdated(newDate)
	require.Equal(t, newDate, r.TimeLastUpdated())
}

func TestRecipeDescription(t *testing.T) {
	t.Run("Not set at construction", func(t *testing.T) {
		r, err := recipe.NewRecipe("creator", "Test Recipe", []recipe.TasteProfile{recipe.TasteSweet}, recipe.Public, "", time.Now())
		require.NoError(t, err)

		_, err = r.Description()
		require.ErrorIs(t, err, recipe.ErrNotSet)
	})

	t.Run("Cleared", func(t *testing.T) {
		r := newMargarita(t)
		r.SetDescription("")

		_, err := r.Description()
		require.ErrorIs(t, err, recipe.ErrNotSet)
	})
}

func TestSetIngredients(t *testing.T) {
	r := newMargarita(t)
	tequila := mustIngredient(t, r, "Tequila", 60, 40)
	lime := mustIngredient(t, r, "Lime Juice", 30, 0)
	tripleSec := mustIngredient(t, r, "Triple Sec", 30, 30)

	t.Run("Valid list keeps order", func(t *testing.T) {
		list := []recipe.Ingredient{tripleSec, tequila, lime}
		require.NoError(t, r.SetIngredients(list))
		require.Equal(t, list, r.Ingredients())
	})

	testCases := []struct {
		name    string
		list    []recipe.Ingredient
		wantErr error
	}{
		{"Empty", nil, recipe.ErrTooFewIngredients},
		{"Single", []recipe.Ingredient{tequila}, recipe.ErrTooFewIngredients},
		{"DuplicateName", []recipe.Ingredient{tequila, lime, tequila}, recipe.ErrDuplicateName},
		{"InvalidEntry", []recipe.Ingredient{tequila, {}}, recipe.ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := r.Ingredients()
			err := r.SetIngredients(tc.list)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, before, r.Ingredients())
		})
	}

	t.Run("Names are case sensitive", func(t *testing.T) {
		lower := mustIngredient(t, r, "tequila", 10, 40)
		require.NoError(t, r.SetIngredients([]recipe.Ingredient{tequila, lower}))
	})

	t.Run("Caller copies are detached", func(t *testing.T) {
		list := []recipe.Ingredient{tequila, lime}
		require.NoError(t, r.SetIngredients(list))

		require.NoError(t, list[1].SetName("Tequila"))
		got := r.Ingredients()
		require.Equal(t, "Lime Juice", got[1].Name())

		require.NoError(t, got[0].SetName("Mezcal"))
		require.Equal(t, "Tequila", r.Ingredients()[0].Name())
	})
}

func TestEditIngredient(t *testing.T) {
	r := newMargarita(t)
	tequila := mustIngredient(t, r, "Tequila", 60, 40)
	lime := mustIngredient(t, r, "Lime Juice", 30, 0)
	require.NoError(t, r.SetIngredients([]recipe.Ingredient{tequila, lime}))

	t.Run("Rename", func(t *testing.T) {
		require.NoError(t, r.RenameIngredient(0, "Silver Tequila"))
		require.Equal(t, "Silver Tequila", r.Ingredients()[0].Name())
	})

	t.Run("Rename to existing name", func(t *testing.T) {
		err := r.RenameIngredient(1, "Silver Tequila")
		require.ErrorIs(t, err, recipe.ErrDuplicateName)
		require.Equal(t, "Lime Juice", r.Ingredients()[1].Name())
	})

	t.Run("Rename to empty", func(t *testing.T) {
		require.ErrorIs(t, r.RenameIngredient(1, ""), recipe.ErrInvalidArgument)
	})

	t.Run("Out of range", func(t *testing.T) {
		require.ErrorIs(t, r.RenameIngredient(2, "Salt"), recipe.ErrInvalidArgument)
		require.ErrorIs(t, r.ReplaceIngredient(-1, tequila), recipe.ErrInvalidArgument)
	})

	t.Run("Replace", func(t *testing.T) {
		syrup := mustIngredient(t, r, "Agave Syrup", 15, 0)
		require.NoError(t, r.ReplaceIngredient(1, syrup))
		require.Equal(t, syrup, r.Ingredients()[1])
	})
}

func TestSetSteps(t *testing.T) {
	r := newMargarita(t)
	step1 := mustStep(t, r, 1, "Rim glass with salt")
	step2 := mustStep(t, r, 2, "Add ingredients to shaker with ice")
	step3 := mustStep(t, r, 3, "Shake well and strain into glass")

	require.NoError(t, r.SetSteps([]recipe.Step{step1, step2, step3}))
	require.Equal(t, []recipe.Step{step1, step2, step3}, r.Steps())

	err := r.SetSteps([]recipe.Step{step1, step2, step3, step3})
	require.ErrorIs(t, err, recipe.ErrDuplicateStepNumber)
	require.Equal(t, []recipe.Step{step1, step2, step3}, r.Steps())

	require.NoError(t, r.SetSteps(nil))
	require.Empty(t, r.Steps())
}

func TestRewriteStep(t *testing.T) {
	r := newMargarita(t)
	require.NoError(t, r.SetSteps([]recipe.Step{mustStep(t, r, 1, "Shake"), mustStep(t, r, 2, "Strain")}))

	require.NoError(t, r.RewriteStep(2, "Double strain"))
	require.Equal(t, "Double strain", r.Steps()[1].Description())

	require.ErrorIs(t, r.RewriteStep(2, ""), recipe.ErrInvalidArgument)
	require.Equal(t, "Double strain", r.Steps()[1].Description())

	require.ErrorIs(t, r.RewriteStep(7, "Garnish"), recipe.ErrInvalidArgument)
}

func TestRecordRoundTrip(t *testing.T) {
	r := newMargarita(t)
	require.NoError(t, r.SetIngredients([]recipe.Ingredient{
		mustIngredient(t, r, random.String(8), random.Float(0, 100), random.Float(0, 100)),
		mustIngredient(t, r, random.String(9), random.Float(0, 100), random.Float(0, 100)),
	}))
	require.NoError(t, r.SetSteps([]recipe.Step{mustStep(t, r, 1, random.String(20))}))

	loaded, err := recipe.FromRecord(r.Record())
	require.NoError(t, err)

	require.Equal(t, r.ID(), loaded.ID())
	require.Equal(t, r.TimeCreated(), loaded.TimeCreated())
	require.Equal(t, r.Ingredients(), loaded.Ingredients())
	require.Equal(t, r.Steps(), loaded.Steps())
	require.Equal(t, r.Record(), loaded.Record())
}
