package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Registration attempt", "username", req.Username)

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			logger.WarnContext(ctx, "Registration failed, username taken", "username", req.Username)
			return utils.ConflictResponse(c, "Username already exists")
		}
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return utils.CreatedResponse(c, dto.RegisterResponse{
		Message: "Registration successful",
		User:    dto.UserToAuthUser(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// ตอบเหมือนกันทั้ง user ไม่มีและ password ผิด
			logger.WarnContext(ctx, "Login failed", "username", req.Username)
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		}
		logger.ErrorContext(ctx, "Login failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Login successful", "user_id", user.ID, "username", user.Username)

	return utils.SuccessResponse(c, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.UserToAuthUser(user),
	})
}

// VerifyUsername ใช้เป็น step แรกของ reset password flow
func (h *AuthHandler) VerifyUsername(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.VerifyUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	user, err := h.userService.VerifyUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			logger.WarnContext(ctx, "Username verification failed", "username", req.Username)
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Username verification failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.VerifyUsernameResponse{
		Message: "Username verified",
		User:    dto.UserToAuthUser(user),
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	if err := h.userService.ResetPassword(ctx, req.Username, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			logger.WarnContext(ctx, "Password reset failed", "username", req.Username)
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Password reset failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Password reset", "username", req.Username)

	return utils.SuccessResponse(c, dto.MessageResponse{
		Message: "Password reset successful",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.userService.Logout(ctx, user.ID); err != nil {
		logger.WarnContext(ctx, "Logout failed", "user_id", user.ID, "error", err)
	}

	logger.InfoContext(ctx, "Logout", "user_id", user.ID)

	return utils.SuccessResponse(c, dto.MessageResponse{
		Message: "Logged out",
	})
}
