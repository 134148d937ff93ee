package service

import (
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) < 8 {
				return false
			}
			var upper, lower, digit, special bool
			for _, char := range value {
				switch {
				case unicode.IsUpper(char):
					upper = true
				case unicode.IsLower(char):
					lower = true
				case unicode.IsDigit(char):
					digit = true
				case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, char):
					special = true
				}
			}
			return upper && lower && digit && special
		})
	})
}

const (
	maxTitleLen  = 255
	maxAuthorLen = 100
)

// ValidateBookFields collects every violation instead of stopping at the
// first one, so the caller can report all of them in one response.
func ValidateBookFields(title, author string) []string {
	var problems []string
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		problems = append(problems, "title must not be empty")
	}
	if len(title) > maxTitleLen {
		problems = append(problems, "title must be at most 255 characters")
	}
	trimmedAuthor := strings.TrimSpace(author)
	if trimmedAuthor == "" {
		problems = append(problems, "author name must not be empty")
	}
	if len(author) > maxAuthorLen {
		problems = append(problems, "author name must be at most 100 characters")
	}
	return problems
}

// RatingInBounds accepts an absent rating and the closed interval [0, 5].
func RatingInBounds(rating *float64) bool {
	if rating == nil {
		return true
	}
	return *rating >= 0.0 && *rating <= 5.0
}
