package handlers

import (
	"errors"
	"net/http"

	"crewboard/internal/dto"
	"crewboard/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login-by-name. There are no sessions or
// credentials; a login is a lookup against the user reference data.
type AuthHandler struct {
	userSvc *service.UserService
}

func NewAuthHandler(userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// Login godoc
// @Summary      Login by user name
// @Description  Resolves the user by exact name match. An unknown name returns 200 with success=false.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "User name"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.userSvc.Login(c.Request.Context(), req.UserName)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// Unknown user is not an HTTP error in this contract.
			c.JSON(http.StatusOK, dto.LoginFailureResponse{Success: false, Message: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "login failed"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    dto.UserResponse{Name: user.Name, Role: user.Role},
	})
}
