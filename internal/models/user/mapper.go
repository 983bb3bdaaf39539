package userModel

import (
	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/gmaschi/go-recipes-social/internal/domain/user"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
)

// ToDomain rebuilds the domain user from its stored row
func ToDomain(u db.User) (*user.User, error) {
	sex, err := recipe.ParseBiologicalSex(u.BiologicalSex)
	if err != nil {
		return nil, err
	}
	return user.New(u.Username, u.Email, sex, u.WeightInKg)
}
