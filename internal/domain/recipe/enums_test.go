package recipe_test

import (
	"testing"

	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	tp, err := recipe.ParseTasteProfile(" sour ")
	require.NoError(t, err)
	require.Equal(t, recipe.TasteSour, tp)
	_, err = recipe.ParseTasteProfile("fizzy")
	require.ErrorIs(t, err, recipe.ErrInvalidArgument)

	v, err := recipe.ParseVisibility("friends_only")
	require.NoError(t, err)
	require.Equal(t, recipe.FriendsOnly, v)
	_, err = recipe.ParseVisibility("")
	require.ErrorIs(t, err, recipe.ErrInvalidArgument)

	sex, err := recipe.ParseBiologicalSex("female")
	require.NoError(t, err)
	require.Equal(t, recipe.SexFemale, sex)
	sex, err = recipe.ParseBiologicalSex("")
	require.NoError(t, err)
	require.Equal(t, recipe.SexUnset, sex)
	_, err = recipe.ParseBiologicalSex("other")
	require.ErrorIs(t, err, recipe.ErrInvalidArgument)
}
