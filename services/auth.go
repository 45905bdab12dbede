package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pitwall/pitwallapi/models"
	"github.com/pitwall/pitwallapi/repository"
	"github.com/pitwall/pitwallapi/token"
)

// AuthService registers and authenticates users, issues bearer tokens and
// owns the preference read/write path. The authenticated identity is always
// an explicit argument; nothing is read from ambient state.
type AuthService struct {
	users    repository.UserRepository
	prefs    repository.PreferenceRepository
	jwtKey   []byte
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, prefs repository.PreferenceRepository, jwtKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, prefs: prefs, jwtKey: jwtKey, tokenTTL: tokenTTL}
}

// Register creates a user with a bcrypt password hash plus an empty preference
// row in one transaction, then issues a token bound to the email. The email
// pre-check raises a duplicate error before any write; the unique constraint
// on users.email settles the concurrent-registration race.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateError{Resource: "User", ID: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	prefs := &models.UserPreference{
		FollowedSeries:  emptyList,
		FollowedTeams:   emptyList,
		FollowedDrivers: emptyList,
	}
	if err := s.users.CreateWithPreferences(ctx, user, prefs); err != nil {
		return nil, err
	}

	tkn, err := token.Issue(s.jwtKey, user.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: tkn, Email: user.Email, DisplayName: user.DisplayName}, nil
}

// Login verifies credentials and issues a fresh token. An unknown email and a
// wrong password collapse to the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tkn, err := token.Issue(s.jwtKey, user.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: tkn, Email: user.Email, DisplayName: user.DisplayName}, nil
}

// GetPreferences decodes the stored followed lists for an already
// authenticated email. A user whose preference row was never created gets a
// not-found error, distinct from login's invalid-credentials.
func (s *AuthService) GetPreferences(ctx context.Context, email string) (*UserPreferenceDTO, error) {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	prefs, err := s.prefs.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return nil, &NotFoundError{Resource: "UserPreference", ID: email}
	}

	return &UserPreferenceDTO{
		FollowedSeries:  decodeStringList(prefs.FollowedSeries),
		FollowedTeams:   decodeStringList(prefs.FollowedTeams),
		FollowedDrivers: decodeStringList(prefs.FollowedDrivers),
	}, nil
}

// UpdatePreferences writes the followed lists, creating the preference row on
// first use, and echoes the saved value.
func (s *AuthService) UpdatePreferences(ctx context.Context, email string, dto *UserPreferenceDTO) (*UserPreferenceDTO, error) {
	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	prefs := &models.UserPreference{
		UserID:          user.ID,
		FollowedSeries:  encodeStringList(dto.FollowedSeries),
		FollowedTeams:   encodeStringList(dto.FollowedTeams),
		FollowedDrivers: encodeStringList(dto.FollowedDrivers),
	}
	if err := s.prefs.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return dto, nil
}

func (s *AuthService) findUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User", ID: email}
	}
	return user, nil
}
