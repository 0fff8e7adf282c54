package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator error เป็น list อ่านง่ายสำหรับ client
func GetValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param()))
		case "uuid":
			messages = append(messages, fmt.Sprintf("%s must be a valid id", fieldErr.Field()))
		case "min", "max":
			messages = append(messages, fmt.Sprintf("%s length is invalid", fieldErr.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return messages
}
