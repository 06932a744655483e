// Package service contains the business logic sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles registration, authentication and profiles.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// Register creates a user and its profile. Username always derives from the
// email local part; full_name falls back to it when the caller sends none.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.Password2 {
		return nil, models.NewValidationError("passwords do not match")
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("email already registered")
	}

	localPart := in.Email[:strings.Index(in.Email, "@")]
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = localPart
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: localPart,
		Email:    in.Email,
		FullName: fullName,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the email/password pair and returns the user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("invalid credentials")
	}
	return user, nil
}

// GetProfile returns the profile owned by userID, cache-aside via Redis.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		p, err := s.users.GetProfileByUserID(ctx, userID)
		if err != nil {
			return err
		}
		profile = *p
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("profile for user", userID)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileInput carries the writable profile fields.
type UpdateProfileInput struct {
	Image     string `json:"image"`
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	About     string `json:"about"`
	Author    bool   `json:"author"`
	Country   string `json:"country"`
	City      string `json:"city"`
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// UpdateProfile replaces the writable fields of the profile owned by userID.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("profile for user", userID)
		}
		return nil, err
	}

	profile.Image = in.Image
	profile.FullName = in.FullName
	profile.Bio = in.Bio
	profile.About = in.About
	profile.Author = in.Author
	profile.Country = in.Country
	profile.City = in.City
	profile.WhatsApp = in.WhatsApp
	profile.Facebook = in.Facebook
	profile.Instagram = in.Instagram
	profile.LinkedIn = in.LinkedIn

	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
