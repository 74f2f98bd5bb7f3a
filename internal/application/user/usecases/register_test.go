package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/shared/authorization"
	"github.com/Menatic/IT-Support/internal/shared/errors"
	"github.com/Menatic/IT-Support/internal/shared/logger"
)

func validRegister() RegisterCommand {
	return RegisterCommand{
		Username:   "dave",
		Password:   "s3cret!",
		Email:      "dave@example.com",
		Name:       "Dave",
		Department: "Finance",
	}
}

func TestRegister_CreatesEmployee(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return u.SetID(1)
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), validRegister())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, authorization.RoleEmployee, result.Role)
	assert.Equal(t, "hashed:s3cret!", saved.PasswordHash())
}

func TestRegister_ShortPassword(t *testing.T) {
	uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, logger.NewNop())

	cmd := validRegister()
	cmd.Password = "abc"
	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			return errors.NewConflictError("Username already exists")
		},
	}
	uc := NewRegisterUseCase(repo, &mockHasher{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), validRegister())
	assert.True(t, errors.IsConflictError(err))
}

func TestRegister_HasherFailure(t *testing.T) {
	hasher := &mockHasher{
		HashFunc: func(password string) (string, error) { return "", fmt.Errorf("boom") },
	}
	uc := NewRegisterUseCase(&mockUserRepository{}, hasher, logger.NewNop())

	_, err := uc.Execute(context.Background(), validRegister())
	require.Error(t, err)
	assert.False(t, errors.IsValidationError(err))
}

func TestLogin(t *testing.T) {
	stored, err := user.ReconstructUser(1, "dave", "stored-hash", "dave@example.com", "Dave", authorization.RoleEmployee, "", time.Now().UTC())
	require.NoError(t, err)

	repo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			if username == "dave" {
				return stored, nil
			}
			return nil, errors.NewNotFoundError("User not found")
		},
	}

	t.Run("success", func(t *testing.T) {
		hasher := &mockHasher{
			VerifyFunc: func(password, hash string) error {
				if password == "s3cret!" && hash == "stored-hash" {
					return nil
				}
				return fmt.Errorf("password verification failed")
			},
		}
		uc := NewLoginUseCase(repo, hasher, logger.NewNop())

		result, err := uc.Execute(context.Background(), LoginCommand{Username: "dave", Password: "s3cret!"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		hasher := &mockHasher{
			VerifyFunc: func(password, hash string) error { return fmt.Errorf("password verification failed") },
		}
		uc := NewLoginUseCase(repo, hasher, logger.NewNop())

		_, err := uc.Execute(context.Background(), LoginCommand{Username: "dave", Password: "nope"})
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		uc := NewLoginUseCase(repo, &mockHasher{}, logger.NewNop())

		_, err := uc.Execute(context.Background(), LoginCommand{Username: "mallory", Password: "x"})
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
		assert.Equal(t, "Invalid username or password", appErr.Message)
	})
}

func TestListUsers_AdminOnly(t *testing.T) {
	stored, err := user.ReconstructUser(1, "admin", "hash", "admin@example.com", "Admin", authorization.RoleAdmin, "", time.Now().UTC())
	require.NoError(t, err)
	repo := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*user.User, error) {
			return []*user.User{stored}, nil
		},
	}
	uc := NewListUsersUseCase(repo, logger.NewNop())

	results, err := uc.Execute(context.Background(), ListUsersQuery{
		Actor: authorization.Actor{UserID: 1, Role: authorization.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	_, err = uc.Execute(context.Background(), ListUsersQuery{
		Actor: authorization.Actor{UserID: 2, Role: authorization.RoleAgent},
	})
	assert.True(t, errors.IsForbiddenError(err))
}
