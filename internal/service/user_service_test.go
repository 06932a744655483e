package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterDerivesIdentityFromEmail(t *testing.T) {
	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, user *models.User) error {
		created = user
		return nil
	}
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "a@x.com",
		Password:  "Sup3rSecret",
		Password2: "Sup3rSecret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "a", user.Username)
	assert.Equal(t, "a", user.FullName)
	assert.Equal(t, "a@x.com", user.Email)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "Sup3rSecret", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Sup3rSecret")))
}

func TestRegisterKeepsProvidedFullName(t *testing.T) {
	svc := NewUserService(noopUserRepo())

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:     "jane@example.com",
		FullName:  "Jane Doe",
		Password:  "Sup3rSecret",
		Password2: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
	assert.Equal(t, "Jane Doe", user.FullName)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"bad email", RegisterInput{Email: "nope", Password: "Sup3rSecret", Password2: "Sup3rSecret"}},
		{"password mismatch", RegisterInput{Email: "a@x.com", Password: "Sup3rSecret", Password2: "Different1X"}},
		{"weak password", RegisterInput{Email: "a@x.com", Password: "weak", Password2: "weak"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email}, nil
	}
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:     "taken@x.com",
		Password:  "Sup3rSecret",
		Password2: "Sup3rSecret",
	})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "a@x.com" {
			return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
		}
		return nil, nil
	}
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "a@x.com", "Sup3rSecret")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = svc.Authenticate(ctx, "a@x.com", "WrongPass1")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	_, err = svc.Authenticate(ctx, "nobody@x.com", "Sup3rSecret")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewUserService(noopUserRepo())

	_, err := svc.GetProfile(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUpdateProfile(t *testing.T) {
	repo := noopUserRepo()
	repo.getProfileByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 9, UserID: userID, FullName: "Old Name"}, nil
	}
	var saved *models.Profile
	repo.updateProfileFn = func(_ context.Context, profile *models.Profile) error {
		saved = profile
		return nil
	}
	svc := NewUserService(repo)

	profile, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileInput{
		FullName: "New Name",
		Bio:      "bio",
		Author:   true,
		Country:  "NZ",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, uint(7), profile.UserID)
	assert.Equal(t, "New Name", profile.FullName)
	assert.Equal(t, "bio", profile.Bio)
	assert.True(t, profile.Author)
}
