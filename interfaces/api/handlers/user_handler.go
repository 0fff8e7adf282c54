package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/ports"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

type UserHandler struct {
	userService services.UserService
	storage     ports.StoragePort
}

func NewUserHandler(userService services.UserService, storage ports.StoragePort) *UserHandler {
	return &UserHandler{
		userService: userService,
		storage:     storage,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.ErrorContext(ctx, "Failed to get profile", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToAuthUser(profile))
}

// UploadAvatar รับ multipart field "avatar" แล้วเก็บผ่าน storage provider
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return utils.BadRequestResponse(c, "Avatar file is required")
	}

	if fileHeader.Size > maxAvatarSize {
		return utils.BadRequestResponse(c, "Avatar file too large")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	switch contentType {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
	default:
		return utils.BadRequestResponse(c, "Unsupported avatar format")
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open avatar upload", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	path := fmt.Sprintf("avatars/%s%s", uuid.New().String(), ext)

	url, err := h.storage.UploadFile(src, path, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Avatar upload failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	updated, err := h.userService.UpdateAvatar(ctx, user.ID, url)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to save avatar", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Avatar updated", "user_id", user.ID, "provider", h.storage.GetProviderName())

	return utils.SuccessResponse(c, dto.UserToAuthUser(updated))
}
