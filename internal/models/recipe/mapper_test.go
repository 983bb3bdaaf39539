package recipeModel

import (
	"encoding/json"
	"testing"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/tools/random"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromAggregate(t *testing.T) {
	t.Run("Rebuilds every field", func(t *testing.T) {
		agg := randomAggregate()

		r, err := FromAggregate(agg)
		require.NoError(t, err)
		require.Equal(t, agg.Recipe.ID, r.ID())
		require.Equal(t, agg.Recipe.Creator, r.Creator())
		require.Equal(t, recipe.Public, r.Visibility())
		require.Len(t, r.Ingredients(), len(agg.Ingredients))
		require.Len(t, r.Steps(), len(agg.Steps))

		res := NewRecipeResponse(r)
		require.Equal(t, agg.Recipe.TasteProfiles, res.TasteProfiles)
		require.Equal(t, agg.Ingredients[0].Name, res.Ingredients[0].Name)
		require.True(t, res.IsPublic)
	})

	t.Run("Corrupt row", func(t *testing.T) {
		agg := randomAggregate()
		agg.Recipe.Visibility = "NOBODY"

		r, err := FromAggregate(agg)
		require.ErrorIs(t, err, recipe.ErrInvalidArgument)
		require.Nil(t, r)
	})
}

func TestCreateTxParams(t *testing.T) {
	r, err := FromAggregate(randomAggregate())
	require.NoError(t, err)

	arg := CreateTxParams(r)
	require.Equal(t, r.ID(), arg.Recipe.ID)
	require.Equal(t, r.Title(), arg.Recipe.Title)
	require.Len(t, arg.Ingredients, len(r.Ingredients()))
	for _, i := range arg.Ingredients {
		require.Equal(t, r.ID(), i.RecipeID)
	}
	for idx, s := range arg.Steps {
		require.EqualValues(t, r.Steps()[idx].StepNumber(), s.StepNumber)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	r, err := FromAggregate(randomAggregate())
	require.NoError(t, err)

	v, err := r.Snapshot(4)
	require.NoError(t, err)

	arg, err := VersionParams(v)
	require.NoError(t, err)
	require.Equal(t, int32(4), arg.VersionNumber)
	require.True(t, json.Valid(arg.Snapshot))

	got, err := FromVersionRow(db.RecipeVersion{
		RecipeID:      arg.RecipeID,
		VersionNumber: arg.VersionNumber,
		Snapshot:      arg.Snapshot,
	})
	require.NoError(t, err)
	require.Equal(t, v.Record(), got.Record())

	_, err = FromVersionRow(db.RecipeVersion{RecipeID: arg.RecipeID, VersionNumber: 1, Snapshot: []byte("{")})
	require.Error(t, err)
}

func TestParseTasteProfiles(t *testing.T) {
	profiles, err := ParseTasteProfiles([]string{"sweet", " Bitter "})
	require.NoError(t, err)
	require.Equal(t, []recipe.TasteProfile{recipe.TasteSweet, recipe.TasteBitter}, profiles)

	_, err = ParseTasteProfiles([]string{"sweet", "loud"})
	require.ErrorIs(t, err, recipe.ErrInvalidArgument)
}

func randomAggregate() db.RecipeAggregate {
	id := uuid.New()
	created := random.Time()
	names := random.StringSlice(2)

	return db.RecipeAggregate{
		Recipe: db.Recipe{
			ID:            id,
			Creator:       random.String(8),
			Title:         random.String(12),
			Description:   random.String(20),
			TasteProfiles: []string{"SWEET", "UMAMI"},
			Visibility:    "PUBLIC",
			CreatedAt:     created,
			UpdatedAt:     created,
		},
		Ingredients: []db.Ingredient{
			{RecipeID: id, Position: 0, Name: names[0], VolumeInMl: 40, Abv: 40},
			{RecipeID: id, Position: 1, Name: names[1], VolumeInMl: 100, Abv: 0},
		},
		Steps: []db.Step{
			{RecipeID: id, Position: 0, StepNumber: 1, Description: random.String(15)},
			{RecipeID: id, Position: 1, StepNumber: 2, Description: random.String(15)},
		},
	}
}
