package handlers

import (
	"net/http"

	"photobook_backend/internal/services"
	"photobook_backend/internal/services/dto"
	"photobook_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/admin-login", h.AdminLogin)
		auth.POST("/check-email", h.CheckEmail)
		auth.POST("/update-password", h.UpdatePassword)
	}

	r.GET("/admin/profile", h.GetAdminProfile)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  userID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	admin, err := h.authService.AdminLogin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success: true,
		Message: "Admin login successful",
		AdminID: admin.ID,
		Email:   admin.Email,
	})
}

func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req dto.CheckEmailRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	exists, err := h.authService.CheckEmail(req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Оба исхода - 200: отсутствие email не ошибка, а ответ
	if exists {
		c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Email exists"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: false, Message: "Email not found"})
}

func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.UpdatePassword(req.Email, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Password updated successfully!"})
}

func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Email is required"))
		return
	}

	admin, err := h.authService.GetAdminProfile(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, admin)
}
