package recipeController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/auth"
	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	recipeModel "github.com/gmaschi/go-recipes-social/internal/models/recipe"
	userModel "github.com/gmaschi/go-recipes-social/internal/models/user"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/logger"
	"github.com/gmaschi/go-recipes-social/pkg/tools/parseErrors"
	"github.com/google/uuid"
)

type Controller struct {
	store db.Store
	log   *logger.Logger
}

// New creates a pointer to a Controller
func New(store db.Store, log *logger.Logger) *Controller {
	return &Controller{
		store: store,
		log:   log.With("controller", "recipe"),
	}
}

// Create handles the request to create a new recipe for the authenticated user
func (c *Controller) Create(ctx *gin.Context) {
	var req recipeModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)

	tasteProfiles, err := recipeModel.ParseTasteProfiles(req.TasteProfiles)
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}
	visibility, err := recipe.ParseVisibility(req.Visibility)
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}

	r, err := recipe.NewRecipe(payload.Username, req.Title, tasteProfiles, visibility, req.Description, time.Now().UTC())
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}
	ingredients, err := recipeModel.Ingredients(r, req.Ingredients)
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}
	if err = r.SetIngredients(ingredients); err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}
	steps, err := recipeModel.Steps(r, req.Steps)
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}
	if err = r.SetSteps(steps); err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}

	agg, err := c.store.CreateRecipeTx(ctx, recipeModel.CreateTxParams(r))
	if err != nil {
		c.respondError(ctx, "create recipe", err)
		return
	}

	c.log.Info("recipe created", "recipe_id", r.ID(), "creator", r.Creator())
	c.respondAggregate(ctx, agg)
}

// Recipe handles the request to get a recipe by ID
func (c *Controller) Recipe(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadVisible(ctx, req.ID)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.NewRecipeResponse(r))
}

// Update handles the request to update the title, description, taste profiles
// and/or visibility of a recipe
func (c *Controller) Update(ctx *gin.Context) {
	var uri recipeModel.GetRequest
	var req recipeModel.UpdateRequest

	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	agg, r, ok := c.loadOwned(ctx, uri.ID)
	if !ok {
		return
	}

	if req.Title != nil {
		if err := r.SetTitle(*req.Title); err != nil {
			c.respondError(ctx, "update recipe", err)
			return
		}
	}
	if req.Description != nil {
		r.SetDescription(*req.Description)
	}
	if req.TasteProfiles != nil {
		tasteProfiles, err := recipeModel.ParseTasteProfiles(req.TasteProfiles)
		if err != nil {
			c.respondError(ctx, "update recipe", err)
			return
		}
		if err = r.SetTasteProfiles(tasteProfiles); err != nil {
			c.respondError(ctx, "update recipe", err)
			return
		}
	}
	if req.Visibility != nil {
		visibility, err := recipe.ParseVisibility(*req.Visibility)
		if err != nil {
			c.respondError(ctx, "update recipe", err)
			return
		}
		if err = r.SetVisibility(visibility); err != nil {
			c.respondError(ctx, "update recipe", err)
			return
		}
	}
	r.SetTimeLastUpdated(time.Now().UTC())

	updated, err := c.store.UpdateRecipe(ctx, recipeModel.UpdateParams(r))
	if err != nil {
		c.respondError(ctx, "update recipe", err)
		return
	}

	agg.Recipe = updated
	c.respondAggregate(ctx, agg)
}

// ReplaceIngredients handles the request to replace the whole ingredient list of a recipe
func (c *Controller) ReplaceIngredients(ctx *gin.Context) {
	var uri recipeModel.GetRequest
	var req recipeModel.ReplaceIngredientsRequest

	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadOwned(ctx, uri.ID)
	if !ok {
		return
	}

	ingredients, err := recipeModel.Ingredients(r, req.Ingredients)
	if err != nil {
		c.respondError(ctx, "replace ingredients", err)
		return
	}
	if err = r.SetIngredients(ingredients); err != nil {
		c.respondError(ctx, "replace ingredients", err)
		return
	}

	c.saveIngredients(ctx, r)
}

// EditIngredient handles the request to change a single ingredient of a recipe
func (c *Controller) EditIngredient(ctx *gin.Context) {
	var uri recipeModel.IngredientURI
	var req recipeModel.EditIngredientRequest

	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadOwned(ctx, uri.ID)
	if !ok {
		return
	}

	ingredients := r.Ingredients()
	if uri.Index >= len(ingredients) {
		c.respondError(ctx, "edit ingredient", errIngredientNotFound)
		return
	}

	edited := ingredients[uri.Index]
	if req.Name != nil {
		if err := edited.SetName(*req.Name); err != nil {
			c.respondError(ctx, "edit ingredient", err)
			return
		}
	}
	if req.VolumeInMl != nil {
		if err := edited.SetVolumeInMl(*req.VolumeInMl); err != nil {
			c.respondError(ctx, "edit ingredient", err)
			return
		}
	}
	if req.Abv != nil {
		if err := edited.SetAbv(*req.Abv); err != nil {
			c.respondError(ctx, "edit ingredient", err)
			return
		}
	}
	if err := r.ReplaceIngredient(uri.Index, edited); err != nil {
		c.respondError(ctx, "edit ingredient", err)
		return
	}

	c.saveIngredients(ctx, r)
}

// ReplaceSteps handles the request to replace the whole step list of a recipe
func (c *Controller) ReplaceSteps(ctx *gin.Context) {
	var uri recipeModel.GetRequest
	var req recipeModel.ReplaceStepsRequest

	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadOwned(ctx, uri.ID)
	if !ok {
		return
	}

	steps, err := recipeModel.Steps(r, req.Steps)
	if err != nil {
		c.respondError(ctx, "replace steps", err)
		return
	}
	if err = r.SetSteps(steps); err != nil {
		c.respondError(ctx, "replace steps", err)
		return
	}

	c.saveSteps(ctx, r)
}

// RewriteStep handles the request to change the description of one step
func (c *Controller) RewriteStep(ctx *gin.Context) {
	var uri recipeModel.StepURI
	var req recipeModel.RewriteStepRequest

	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadOwned(ctx, uri.ID)
	if !ok {
		return
	}

	if err := r.RewriteStep(uri.StepNumber, req.Description); err != nil {
		c.respondError(ctx, "rewrite step", err)
		return
	}

	c.saveSteps(ctx, r)
}

// Delete handles a request to delete a recipe owned by the authenticated user
func (c *Controller) Delete(ctx *gin.Context) {
	var req recipeModel.DeleteRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	id := uuid.MustParse(req.ID)
	stored, err := c.store.GetRecipe(ctx, id)
	if err != nil {
		c.respondError(ctx, "delete recipe", err)
		return
	}
	if stored.Creator != authMiddleware.Payload(ctx).Username {
		c.respondError(ctx, "delete recipe", errNotCreator)
		return
	}

	if err = c.store.DeleteRecipe(ctx, id); err != nil {
		c.respondError(ctx, "delete recipe", err)
		return
	}

	c.log.Info("recipe deleted", "recipe_id", id)
	ctx.JSON(http.StatusOK, "ok")
}

// List handles a request to list the public recipes and the authenticated
// user's own recipes with pagination
func (c *Controller) List(ctx *gin.Context) {
	var req recipeModel.ListRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	listArgs := db.ListRecipesParams{
		Creator: authMiddleware.Payload(ctx).Username,
		Limit:   req.PageSize,
		Offset:  req.PageSize * (req.PageID - 1),
	}

	recipes, err := c.store.ListRecipes(ctx, listArgs)
	if err != nil {
		c.respondError(ctx, "list recipes", err)
		return
	}

	res := make([]recipeModel.ListResponse, 0, len(recipes))
	for _, row := range recipes {
		res = append(res, recipeModel.NewListResponse(row))
	}

	ctx.JSON(http.StatusOK, res)
}

// BAC handles the request to estimate the authenticated user's blood alcohol
// content after drinking the recipe
func (c *Controller) BAC(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	_, r, ok := c.loadVisible(ctx, req.ID)
	if !ok {
		return
	}

	consumer, ok := c.consumer(ctx)
	if !ok {
		return
	}

	bac, err := r.CalculateBAC(consumer)
	if err != nil {
		c.respondError(ctx, "calculate bac", err)
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.BACResponse{
		RecipeID:     r.ID(),
		Username:     consumer.Username(),
		AlcoholGrams: r.AlcoholGrams(),
		BAC:          bac,
	})
}

func (c *Controller) saveIngredients(ctx *gin.Context, r *recipe.Recipe) {
	now := time.Now().UTC()
	r.SetTimeLastUpdated(now)

	agg, err := c.store.ReplaceIngredientsTx(ctx, db.ReplaceIngredientsTxParams{
		RecipeID:    r.ID(),
		Ingredients: recipeModel.IngredientParams(r.Ingredients()),
		UpdatedAt:   now,
	})
	if err != nil {
		c.respondError(ctx, "save ingredients", err)
		return
	}

	c.respondAggregate(ctx, agg)
}

func (c *Controller) saveSteps(ctx *gin.Context, r *recipe.Recipe) {
	now := time.Now().UTC()
	r.SetTimeLastUpdated(now)

	agg, err := c.store.ReplaceStepsTx(ctx, db.ReplaceStepsTxParams{
		RecipeID:  r.ID(),
		Steps:     recipeModel.StepParams(r.Steps()),
		UpdatedAt: now,
	})
	if err != nil {
		c.respondError(ctx, "save steps", err)
		return
	}

	c.respondAggregate(ctx, agg)
}

func (c *Controller) respondAggregate(ctx *gin.Context, agg db.RecipeAggregate) {
	r, err := recipeModel.FromAggregate(agg)
	if err != nil {
		c.log.Error("cannot rebuild recipe", "recipe_id", agg.Recipe.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, recipeModel.NewRecipeResponse(r))
}

// load fetches a recipe aggregate and rebuilds the domain recipe from it
func (c *Controller) load(ctx *gin.Context, rawID string) (db.RecipeAggregate, *recipe.Recipe, bool) {
	agg, err := c.store.RecipeAggregate(ctx, uuid.MustParse(rawID))
	if err != nil {
		c.respondError(ctx, "load recipe", err)
		return agg, nil, false
	}

	r, err := recipeModel.FromAggregate(agg)
	if err != nil {
		c.log.Error("cannot rebuild recipe", "recipe_id", rawID, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return agg, nil, false
	}
	return agg, r, true
}

// loadVisible loads a recipe the authenticated user is allowed to read
func (c *Controller) loadVisible(ctx *gin.Context, rawID string) (db.RecipeAggregate, *recipe.Recipe, bool) {
	agg, r, ok := c.load(ctx, rawID)
	if !ok {
		return agg, nil, false
	}
	if !canRead(r.IsPublic(), r.Creator(), authMiddleware.Payload(ctx).Username) {
		c.respondError(ctx, "load recipe", errRecipeNotFound)
		return agg, nil, false
	}
	return agg, r, true
}

// loadOwned loads a recipe created by the authenticated user
func (c *Controller) loadOwned(ctx *gin.Context, rawID string) (db.RecipeAggregate, *recipe.Recipe, bool) {
	agg, r, ok := c.load(ctx, rawID)
	if !ok {
		return agg, nil, false
	}
	if r.Creator() != authMiddleware.Payload(ctx).Username {
		c.respondError(ctx, "load recipe", errNotCreator)
		return agg, nil, false
	}
	return agg, r, true
}

type drinker interface {
	recipe.Consumer
	Username() string
}

// consumer loads the authenticated user as a BAC consumer
func (c *Controller) consumer(ctx *gin.Context) (drinker, bool) {
	stored, err := c.store.GetUser(ctx, authMiddleware.Payload(ctx).Username)
	if err != nil {
		c.respondError(ctx, "get user", err)
		return nil, false
	}
	u, err := userModel.ToDomain(stored)
	if err != nil {
		c.log.Error("cannot rebuild user", "username", stored.Username, "error", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return nil, false
	}
	return u, true
}

// canRead reports whether username may see a recipe. Without a friend graph
// FRIENDS_ONLY recipes are visible to their creator only.
func canRead(isPublic bool, creator, username string) bool {
	return isPublic || creator == username
}
