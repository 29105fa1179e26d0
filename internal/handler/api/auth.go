package api

import (
	"errors"
	"net/http"

	reqdto "shuttlebook/internal/handler/dto/request"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/handler/middleware"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Sign up
// @Description Register a new member account and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Signup(c.Request.Context(), commands.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid signup details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result.Token, result.User))
}

// @Summary Log in
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), commands.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result.Token, result.User))
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
