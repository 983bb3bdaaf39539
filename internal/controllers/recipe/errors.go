package recipeController

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/gmaschi/go-recipes-social/pkg/tools/parseErrors"
	"github.com/lib/pq"
)

var (
	errNotCreator         = errors.New("recipe doesn't belong to the authenticated user")
	errRecipeNotFound     = errors.New("recipe not found")
	errIngredientNotFound = errors.New("ingredient not found")
)

// statusFor maps domain and storage errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, recipe.ErrInvalidArgument),
		errors.Is(err, recipe.ErrDuplicateName),
		errors.Is(err, recipe.ErrTooFewIngredients),
		errors.Is(err, recipe.ErrDuplicateStepNumber):
		return http.StatusBadRequest
	case errors.Is(err, recipe.ErrNotSet), errors.Is(err, sql.ErrNoRows), errors.Is(err, errRecipeNotFound),
		errors.Is(err, errIngredientNotFound):
		return http.StatusNotFound
	case errors.Is(err, recipe.ErrMissingAttribute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errNotCreator):
		return http.StatusForbidden
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return http.StatusConflict
		case "foreign_key_violation":
			return http.StatusForbidden
		}
	}
	return http.StatusInternalServerError
}

func (c *Controller) respondError(ctx *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.log.Error("request failed", "op", op, "error", err)
	}
	ctx.JSON(status, parseErrors.ErrorResponse(err))
}
