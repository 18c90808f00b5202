package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"postboard-backend/internal/auth/domain"
	"postboard-backend/internal/auth/dto"
	"postboard-backend/pkg/config"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	created int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-1"
	}
	r.byEmail[user.Email] = user
	r.created++
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	return r.byEmail[email], nil
}

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{JWTSecret: "secret", JWTExpiry: expiry}
}

func TestSignupThenLogin_Roundtrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))

	err := uc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "hunter22"})
	require.NoError(t, err)
	require.Equal(t, 1, repo.created)

	resp, err := uc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "hunter22"})
	require.NoError(t, err)
	require.Equal(t, 3600, resp.ExpiresIn)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, repo.byEmail["a@b.com"].ID, resp.UserID)

	identity, err := uc.VerifyToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", identity.Email)
	require.Equal(t, resp.UserID, identity.UserID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))

	require.NoError(t, uc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "hunter22"}))
	err := uc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "other"})
	require.ErrorIs(t, err, ErrEmailTaken)
	require.Equal(t, 1, repo.created)
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	require.NoError(t, uc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "hunter22"}))

	_, err := uc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(&dto.LoginRequest{Email: "nobody@b.com", Password: "hunter22"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_Expired(t *testing.T) {
	repo := newFakeUserRepo()
	require.NoError(t, NewAuthUsecase(repo, testConfig(time.Hour)).Signup(&dto.SignupRequest{Email: "a@b.com", Password: "hunter22"}))

	// Issue with a negative lifetime so the token is already expired
	expired := NewAuthUsecase(repo, testConfig(-time.Minute))
	resp, err := expired.Login(&dto.LoginRequest{Email: "a@b.com", Password: "hunter22"})
	require.NoError(t, err)

	fresh := NewAuthUsecase(repo, testConfig(time.Hour))
	_, err = fresh.VerifyToken(resp.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	require.NoError(t, uc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "hunter22"}))
	resp, err := uc.Login(&dto.LoginRequest{Email: "a@b.com", Password: "hunter22"})
	require.NoError(t, err)

	other := NewAuthUsecase(repo, &config.Config{JWTSecret: "different", JWTExpiry: time.Hour})
	_, err = other.VerifyToken(resp.Token)

	// Forgery and expiry collapse into the same error
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig(time.Hour))
	_, err := uc.VerifyToken("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
