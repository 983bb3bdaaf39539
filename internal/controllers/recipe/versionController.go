package recipeController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/auth"
	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	recipeModel "github.com/gmaschi/go-recipes-social/internal/models/recipe"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/tools/parseErrors"
	"github.com/google/uuid"
)

// CreateVersion handles the request to snapshot a recipe as its next version
func (c *Controller) CreateVersion(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadOwned(ctx, req.ID)
	if !ok {
		return
	}

	latest, err := c.store.LatestVersionNumber(ctx, r.ID())
	if err != nil {
		c.respondError(ctx, "latest version", err)
		return
	}

	v, err := r.Snapshot(int(latest) + 1)
	if err != nil {
		c.respondError(ctx, "snapshot recipe", err)
		return
	}
	arg, err := recipeModel.VersionParams(v)
	if err != nil {
		c.respondError(ctx, "snapshot recipe", err)
		return
	}

	row, err := c.store.CreateRecipeVersion(ctx, arg)
	if err != nil {
		c.respondError(ctx, "create version", err)
		return
	}

	c.log.Info("recipe version created", "recipe_id", r.ID(), "version", row.VersionNumber)
	c.respondVersion(ctx, row)
}

// Versions handles the request to list every version of a recipe
func (c *Controller) Versions(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	id := uuid.MustParse(req.ID)
	if _, ok := c.readableRow(ctx, id); !ok {
		return
	}

	rows, err := c.store.ListRecipeVersions(ctx, id)
	if err != nil {
		c.respondError(ctx, "list versions", err)
		return
	}

	res := make([]recipeModel.VersionResponse, 0, len(rows))
	for _, row := range rows {
		v, err := recipeModel.FromVersionRow(row)
		if err != nil {
			c.log.Error("cannot rebuild version", "recipe_id", id, "version", row.VersionNumber, "error", err)
			ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
			return
		}
		res = append(res, recipeModel.NewVersionResponse(v))
	}

	ctx.JSON(http.StatusOK, res)
}

// Version handles the request to get one version of a recipe
func (c *Controller) Version(ctx *gin.Context) {
	var req recipeModel.VersionURI

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	v, ok := c.readableVersion(ctx, req)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.NewVersionResponse(v))
}

// VersionBAC handles the request to estimate the authenticated user's blood
// alcohol content for one version of a recipe
func (c *Controller) VersionBAC(ctx *gin.Context) {
	var req recipeModel.VersionURI

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	v, ok := c.readableVersion(ctx, req)
	if !ok {
		return
	}

	consumer, ok := c.consumer(ctx)
	if !ok {
		return
	}

	bac, err := v.CalculateBAC(consumer)
	if err != nil {
		c.respondError(ctx, "calculate bac", err)
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.BACResponse{
		RecipeID:      v.RecipeID(),
		VersionNumber: v.VersionNumber(),
		Username:      consumer.Username(),
		AlcoholGrams:  v.AlcoholGrams(),
		BAC:           bac,
	})
}

// RestoreVersion handles the request to roll a recipe back to a stored version
func (c *Controller) RestoreVersion(ctx *gin.Context) {
	var req recipeModel.VersionURI

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	id := uuid.MustParse(req.ID)
	stored, err := c.store.GetRecipe(ctx, id)
	if err != nil {
		c.respondError(ctx, "restore version", err)
		return
	}
	if stored.Creator != authMiddleware.Payload(ctx).Username {
		c.respondError(ctx, "restore version", errNotCreator)
		return
	}

	row, err := c.store.GetRecipeVersion(ctx, db.GetRecipeVersionParams{RecipeID: id, VersionNumber: req.Version})
	if err != nil {
		c.respondError(ctx, "restore version", err)
		return
	}
	v, err := recipeModel.FromVersionRow(row)
	if err != nil {
		c.log.Error("cannot rebuild version", "recipe_id", id, "version", row.VersionNumber, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	restored := v.Recipe()
	restored.SetTimeLastUpdated(time.Now().UTC())

	agg, err := c.store.UpdateRecipeTx(ctx, recipeModel.UpdateTxParams(restored))
	if err != nil {
		c.respondError(ctx, "restore version", err)
		return
	}

	c.log.Info("recipe version restored", "recipe_id", id, "version", v.VersionNumber())
	c.respondAggregate(ctx, agg)
}

func (c *Controller) respondVersion(ctx *gin.Context, row db.RecipeVersion) {
	v, err := recipeModel.FromVersionRow(row)
	if err != nil {
		c.log.Error("cannot rebuild version", "recipe_id", row.RecipeID, "version", row.VersionNumber, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, recipeModel.NewVersionResponse(v))
}

// readableRow fetches the recipe row when the authenticated user may read it
func (c *Controller) readableRow(ctx *gin.Context, id uuid.UUID) (db.Recipe, bool) {
	row, err := c.store.GetRecipe(ctx, id)
	if err != nil {
		c.respondError(ctx, "get recipe", err)
		return row, false
	}
	if !canRead(row.Visibility == string(recipe.Public), row.Creator, authMiddleware.Payload(ctx).Username) {
		c.respondError(ctx, "get recipe", errRecipeNotFound)
		return row, false
	}
	return row, true
}

func (c *Controller) readableVersion(ctx *gin.Context, req recipeModel.VersionURI) (*recipe.Version, bool) {
	id := uuid.MustParse(req.ID)
	if _, ok := c.readableRow(ctx, id); !ok {
		return nil, false
	}

	row, err := c.store.GetRecipeVersion(ctx, db.GetRecipeVersionParams{RecipeID: id, VersionNumber: req.Version})
	if err != nil {
		c.respondError(ctx, "get version", err)
		return nil, false
	}

	v, err := recipeModel.FromVersionRow(row)
	if err != nil {
		c.log.Error("cannot rebuild version", "recipe_id", id, "version", row.VersionNumber, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return nil, false
	}
	return v, true
}
