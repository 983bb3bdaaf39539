package socialRecipeFactory

import (
	"fmt"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/auth"
	loggingMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/logging"
	recipeController "github.com/gmaschi/go-recipes-social/internal/controllers/recipe"
	userController "github.com/gmaschi/go-recipes-social/internal/controllers/user"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth"
	pasetoToken "github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth/paseto"
	"github.com/gmaschi/go-recipes-social/pkg/config/env"
	"github.com/gmaschi/go-recipes-social/pkg/logger"
)

type (
	Factory struct {
		config               env.Config
		store                db.Store
		socialRecipesHandler socialRecipesHandler
		Router               *gin.Engine
		TokenAuth            tokenAuth.Maker
		Log                  *logger.Logger
	}

	socialRecipesHandler struct {
		userController   *userController.Controller
		recipeController *recipeController.Controller
	}
)

// New wires the token maker, logger, controllers and routes around store
func New(config env.Config, store db.Store) (*Factory, error) {
	tokenMaker, err := pasetoToken.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	log, err := logger.New(config.LogMode)
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	factory := &Factory{
		config: config,
		store:  store,
		socialRecipesHandler: socialRecipesHandler{
			userController:   userController.New(store, tokenMaker, config.TokenDuration, log),
			recipeController: recipeController.New(store, log),
		},
		TokenAuth: tokenMaker,
		Log:       log,
	}

	router := gin.New()
	router.Use(gin.Recovery(), loggingMiddleware.RequestLogger(log))

	factory.setupRoutes(router)

	factory.Router = router
	return factory, nil
}

func (f *Factory) setupRoutes(router *gin.Engine) {
	users := f.socialRecipesHandler.userController
	recipes := f.socialRecipesHandler.recipeController

	router.POST("/users", users.Create)
	router.POST("/users/login", users.Login)
	router.GET("/users/:username", users.User)
	router.GET("/users", users.List)

	authRoutes := router.Group("/").Use(authMiddleware.AuthMiddleware(f.TokenAuth))
	{
		authRoutes.PATCH("/users", users.Update)
		authRoutes.DELETE("/users/:username", users.Delete)

		authRoutes.POST("/recipes", recipes.Create)
		authRoutes.GET("/recipes", recipes.List)
		authRoutes.GET("/recipes/:id", recipes.Recipe)
		authRoutes.PATCH("/recipes/:id", recipes.Update)
		authRoutes.DELETE("/recipes/:id", recipes.Delete)
		authRoutes.PUT("/recipes/:id/ingredients", recipes.ReplaceIngredients)
		authRoutes.PATCH("/recipes/:id/ingredients/:index", recipes.EditIngredient)
		authRoutes.PUT("/recipes/:id/steps", recipes.ReplaceSteps)
		authRoutes.PATCH("/recipes/:id/steps/:step", recipes.RewriteStep)
		authRoutes.GET("/recipes/:id/bac", recipes.BAC)

		authRoutes.POST("/recipes/:id/versions", recipes.CreateVersion)
		authRoutes.GET("/recipes/:id/versions", recipes.Versions)
		authRoutes.GET("/recipes/:id/versions/:version", recipes.Version)
		authRoutes.GET("/recipes/:id/versions/:version/bac", recipes.VersionBAC)
		authRoutes.POST("/recipes/:id/versions/:version/restore", recipes.RestoreVersion)
	}
}

// Start runs the HTTP server on address
func (f *Factory) Start(address string) error {
	f.Log.Info("starting server", "address", address)
	return f.Router.Run(address)
}
