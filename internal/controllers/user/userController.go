package userController

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-social/internal/controllers/middlewares/auth"
	"github.com/gmaschi/go-recipes-social/internal/domain/recipe"
	"github.com/gmaschi/go-recipes-social/internal/domain/user"
	userModel "github.com/gmaschi/go-recipes-social/internal/models/user"
	db "github.com/gmaschi/go-recipes-social/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-social/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-social/pkg/logger"
	"github.com/gmaschi/go-recipes-social/pkg/tools/parseErrors"
	"github.com/gmaschi/go-recipes-social/pkg/tools/password"
	"github.com/gmaschi/go-recipes-social/pkg/tools/validators"
	"github.com/lib/pq"
)

var errUnauthorizedUser = errors.New("account doesn't belong to the authenticated user")

type Controller struct {
	store         db.Store
	tokenMaker    tokenAuth.Maker
	tokenDuration time.Duration
	log           *logger.Logger
}

// New creates a pointer to a Controller
func New(store db.Store, tokenMaker tokenAuth.Maker, tokenDuration time.Duration, log *logger.Logger) *Controller {
	return &Controller{
		store:         store,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
		log:           log.With("controller", "user"),
	}
}

// Create handles the request to create a new user
func (c *Controller) Create(ctx *gin.Context) {
	var req userModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	sex, err := recipe.ParseBiologicalSex(req.BiologicalSex)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	newUser, err := user.New(req.Username, req.Email, sex, req.WeightInKg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	hashedPassword, err := password.HashPassword(req.Password)
	if err != nil {
		c.internalError(ctx, "hash password", err)
		return
	}

	createArgs := db.CreateUserParams{
		Username:       newUser.Username(),
		HashedPassword: hashedPassword,
		Email:          newUser.Email(),
		BiologicalSex:  string(newUser.BiologicalSex()),
		WeightInKg:     newUser.WeightInKg(),
	}

	createdUser, err := c.store.CreateUser(ctx, createArgs)
	if err != nil {
		if pqError, ok := err.(*pq.Error); ok {
			switch pqError.Code.Name() {
			case "unique_violation":
				ctx.JSON(http.StatusForbidden, parseErrors.ErrorResponse(pqError))
				return
			}
		}
		c.internalError(ctx, "create user", err)
		return
	}

	c.log.Info("user created", "username", createdUser.Username)
	ctx.JSON(http.StatusOK, userModel.CreateResponse(createdUser))
}

// Login handles the request to exchange a username and password for an access token
func (c *Controller) Login(ctx *gin.Context) {
	var req userModel.LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	storedUser, err := c.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(err))
			return
		}
		c.internalError(ctx, "get user", err)
		return
	}

	if err := password.CheckPassword(req.Password, storedUser.HashedPassword); err != nil {
		ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
		return
	}

	accessToken, err := c.tokenMaker.CreateToken(storedUser.Username, c.tokenDuration)
	if err != nil {
		c.internalError(ctx, "create token", err)
		return
	}

	res := userModel.LoginResponse{
		AccessToken: accessToken,
		User:        userModel.GetResponse(storedUser),
	}
	ctx.JSON(http.StatusOK, res)
}

// User handles the request to get a user based on the username
func (c *Controller) User(ctx *gin.Context) {
	var req userModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	storedUser, err := c.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(err))
			return
		}
		c.internalError(ctx, "get user", err)
		return
	}

	ctx.JSON(http.StatusOK, userModel.GetResponse(storedUser))
}

// Update handles the request to update the profile and/or password of the authenticated user
func (c *Controller) Update(ctx *gin.Context) {
	var req userModel.UpdateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	if payload.Username != req.Username {
		ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUnauthorizedUser))
		return
	}

	storedUser, err := c.store.GetUser(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(err))
			return
		}
		c.internalError(ctx, "get user", err)
		return
	}

	updateArgs := db.UpdateUserParams{
		Username:       storedUser.Username,
		HashedPassword: storedUser.HashedPassword,
		Email:          storedUser.Email,
		BiologicalSex:  storedUser.BiologicalSex,
		WeightInKg:     storedUser.WeightInKg,
		UpdatedAt:      storedUser.UpdatedAt,
	}

	now := time.Now().UTC()
	trimmedEmail := strings.TrimSpace(req.Email)
	trimmedPassword := strings.TrimSpace(req.Password)
	trimmedSex := strings.TrimSpace(req.BiologicalSex)

	if trimmedEmail != "" {
		updateArgs.Email = trimmedEmail
		updateArgs.UpdatedAt = now
	}
	if trimmedSex != "" {
		updateArgs.BiologicalSex = trimmedSex
		updateArgs.UpdatedAt = now
	}
	if req.WeightInKg != nil {
		updateArgs.WeightInKg = *req.WeightInKg
		updateArgs.UpdatedAt = now
	}

	sex, err := recipe.ParseBiologicalSex(updateArgs.BiologicalSex)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	updatedUser, err := user.New(updateArgs.Username, updateArgs.Email, sex, updateArgs.WeightInKg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	updateArgs.BiologicalSex = string(updatedUser.BiologicalSex())

	if trimmedPassword != "" {
		if !validators.Password(trimmedPassword) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(fmt.Errorf("%w: invalid password", recipe.ErrInvalidArgument)))
			return
		}
		hashedPassword, err := password.HashPassword(trimmedPassword)
		if err != nil {
			c.internalError(ctx, "hash password", err)
			return
		}
		updateArgs.HashedPassword = hashedPassword
		updateArgs.UpdatedAt = now
	}

	savedUser, err := c.store.UpdateUser(ctx, updateArgs)
	if err != nil {
		if pqError, ok := err.(*pq.Error); ok {
			switch pqError.Code.Name() {
			case "unique_violation":
				ctx.JSON(http.StatusForbidden, parseErrors.ErrorResponse(pqError))
				return
			}
		}
		c.internalError(ctx, "update user", err)
		return
	}

	ctx.JSON(http.StatusOK, userModel.UpdateResponse(savedUser))
}

// Delete handles the request to delete the authenticated user
func (c *Controller) Delete(ctx *gin.Context) {
	var req userModel.DeleteRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	if payload.Username != req.Username {
		ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUnauthorizedUser))
		return
	}

	err := c.store.DeleteUser(ctx, req.Username)
	if err != nil {
		if pqError, ok := err.(*pq.Error); ok {
			switch pqError.Code.Name() {
			case "foreign_key_violation":
				ctx.JSON(http.StatusForbidden, parseErrors.ErrorResponse(pqError))
				return
			}
		}
		c.internalError(ctx, "delete user", err)
		return
	}

	c.log.Info("user deleted", "username", req.Username)
	ctx.JSON(http.StatusOK, "ok")
}

// List handles the request to list the users with pagination
func (c *Controller) List(ctx *gin.Context) {
	var req userModel.ListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	listArgs := db.ListUsersParams{
		Limit:  req.PageSize,
		Offset: req.PageSize * (req.PageID - 1),
	}

	users, err := c.store.ListUsers(ctx, listArgs)
	if err != nil {
		if err == sql.ErrNoRows {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(err))
			return
		}
		c.internalError(ctx, "list users", err)
		return
	}

	res := make([]userModel.ListResponse, 0, len(users))
	for _, u := range users {
		res = append(res, userModel.ListResponse(u))
	}

	ctx.JSON(http.StatusOK, res)
}

func (c *Controller) internalError(ctx *gin.Context, op string, err error) {
	c.log.Error("request failed", "op", op, "error", err)
	ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
}
