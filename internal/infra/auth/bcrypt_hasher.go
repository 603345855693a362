// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"gusto/config"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes.
const bcryptMaxPasswordLength = 72

var defaultForbiddenWords = []string{"password", "123456", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost           int
	strength       config.PasswordStrengthConfig
	forbiddenWords []string
}

// NewBcryptHasher builds the hasher from the auth and password strength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost. A nil strength
// policy requires eight characters with at least one letter and one number.
func NewBcryptHasherWithCost(cost int, strength *config.PasswordStrengthConfig) service.PasswordHasher {
	policy := config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        bcryptMaxPasswordLength,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
	if strength != nil {
		policy = *strength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordLength {
		policy.MaxLength = bcryptMaxPasswordLength
	}

	return &bcryptHasher{
		cost:           cost,
		strength:       policy,
		forbiddenWords: defaultForbiddenWords,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	policy := h.strength

	if len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least " + strconv.Itoa(policy.MinLength) + " characters long")
	}
	if len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at most " + strconv.Itoa(policy.MaxLength) + " bytes long")
	}
	if policy.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if policy.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if policy.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if policy.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, h.forbiddenWords) {
		return domainerrors.ErrPasswordStrength.WithDetails("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
