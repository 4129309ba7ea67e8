package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/dto"
	"github.com/tajuwa/clickbit_backend/internal/middleware"
)

// userHandler handles HTTP requests on the session user's profile.
type userHandler struct {
	authService portssvc.AuthSvcFacade
}

func newUserHandler(authService portssvc.AuthSvcFacade) *userHandler {
	return &userHandler{authService: authService}
}

// Me godoc
// @Summary Get current user profile
// @Description Returns the public projection of the session user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/me [get]
func (h *userHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Overwrites only the provided fields and returns the refreshed projection.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/profile [put]
func (h *userHandler) UpdateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Could not validate credentials"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, logger, err, "An error occurred while updating profile")
		return
	}

	logger.Info("User profile updated")
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}
