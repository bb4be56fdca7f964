package handlers

import (
	"net/http"

	"photobook_backend/internal/services"
	"photobook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	profile := r.Group("/profile")
	{
		profile.GET("/:email", h.GetProfile)
		profile.PUT("/:email", h.UpdateProfile)
	}

	admin := r.Group("/admin/users")
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/update/:id", h.UpdateUser)
		admin.DELETE("/delete/:id", h.DeleteUser)
		admin.PUT("/block/:id", h.BlockUser)
	}
}

// --- Profile handlers ---

func (h *UserHandler) GetProfile(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.userService.GetProfile(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		Profile: []dto.ProfileInfo{*profile},
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	email := c.Param("email")

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.UpdateProfile(email, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Profile updated successfully"})
}

// --- Admin handlers ---

func (h *UserHandler) ListUsers(c *gin.Context) {
	search := c.Query("search")

	users, err := h.userService.ListUsers(search)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.AdminUpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.UpdateUser(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) BlockUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.BlockUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.SetUserBlocked(id, *req.Blocked); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "User unblocked"
	if *req.Blocked == 1 {
		message = "User blocked"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
