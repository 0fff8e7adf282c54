package dto

import "taskboard/domain/models"

func UserToAuthUser(user *models.User) AuthUser {
	return AuthUser{
		ID:       user.ID.String(),
		Username: user.Username,
		Avatar:   user.Avatar,
	}
}
