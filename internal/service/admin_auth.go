package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminAuthDisabled = errors.New("admin auth not configured")
	ErrAdminCredentials  = errors.New("admin credentials invalid")
	ErrJWTInvalid        = errors.New("jwt invalid")
	ErrJWTExpired        = errors.New("jwt expired")
)

// AdminClaims are the claims carried by an admin access token.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminToken is the login response payload.
type AdminToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AdminAuthService guards the lead export surface: one bcrypt-hashed admin
// password, exchanged for a short-lived JWT access token.
type AdminAuthService struct {
	secret       []byte
	passwordHash []byte
	accessTTL    time.Duration
	issuer       string
}

func NewAdminAuthService(secret, passwordHash string, accessTTL time.Duration) *AdminAuthService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &AdminAuthService{
		secret:       []byte(secret),
		passwordHash: []byte(passwordHash),
		accessTTL:    accessTTL,
		issuer:       "buyer-quiz",
	}
}

// Login exchanges the admin password for an access token.
func (s *AdminAuthService) Login(password string) (AdminToken, error) {
	if len(s.secret) == 0 || len(s.passwordHash) == 0 {
		return AdminToken{}, ErrAdminAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return AdminToken{}, ErrAdminCredentials
	}

	now := time.Now().UTC()
	claims := AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return AdminToken{}, err
	}

	return AdminToken{
		AccessToken: token,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// ParseAccessToken validates a token and returns its claims.
func (s *AdminAuthService) ParseAccessToken(tokenString string) (AdminClaims, error) {
	if len(s.secret) == 0 {
		return AdminClaims{}, ErrAdminAuthDisabled
	}

	var claims AdminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrJWTInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AdminClaims{}, ErrJWTExpired
		}
		return AdminClaims{}, ErrJWTInvalid
	}
	if !token.Valid || claims.Role != "admin" {
		return AdminClaims{}, ErrJWTInvalid
	}

	return claims, nil
}
