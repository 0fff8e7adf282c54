package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Username  string    `gorm:"uniqueIndex;not null"` // case-sensitive, globally unique
	Password  string    `gorm:"not null"`             // bcrypt hash เท่านั้น ห้ามเก็บ plaintext
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
