package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bookery/internal/models"
	"bookery/internal/repository"
	"bookery/internal/validation"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileInput carries optional profile fields; nil means unchanged.
type UpdateProfileInput struct {
	UserID      uint
	Name        *string
	Bio         *string
	Avatar      *string
	Title       *string
	Gender      *string
	DateOfBirth *string
}

func parseDate(s string) (*time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := validation.ValidateUsername(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{Name: in.Name, Email: in.Email, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies an identity (name or email) and password.
func (s *UserService) Authenticate(ctx context.Context, identity, password string) (*models.User, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || password == "" {
		return nil, models.NewValidationError("Identity and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(identity))
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.GetByName(ctx, identity)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", identity)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}
	return user, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns users ordered by id.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the provided profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxTitleLen = 100

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validation.ValidateUsername(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = name
	}
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	if in.Title != nil {
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 100 characters)")
		}
		user.Title = *in.Title
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth)
		if err != nil {
			return nil, models.NewValidationError("Date of birth must be YYYY-MM-DD")
		}
		user.DateOfBirth = dob
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces a user's password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return models.NewUnauthenticatedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(next); err != nil {
		return models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = string(hash)
	return s.userRepo.Update(ctx, user)
}

// ChangeEmail replaces a user's email after verifying their password.
func (s *UserService) ChangeEmail(ctx context.Context, userID uint, password, email string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthenticatedError("Password is incorrect")
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user.Email = email
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount soft-deletes a user.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}

// SetAdmin grants or revokes the admin flag.
func (s *UserService) SetAdmin(ctx context.Context, targetID uint, isAdmin bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = isAdmin
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAdmin reports whether a user currently holds the admin flag. Authorization
// always reads the user row rather than trusting token claims.
func (s *UserService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
