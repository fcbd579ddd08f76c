package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

const (
	operatorScope = "maze:admin"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySubject = errors.New("token subject is required")
)

// operatorClaims are the claims carried by archive-management tokens.
type operatorClaims struct {
	Scope string `json:"scope"`
	jwt.StandardClaims
}

// JwtService issues and verifies operator tokens.
type JwtService struct {
	secretKey string
	issuer    string
	now       func() time.Time
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
		now:       time.Now,
	}
}

// Issue creates a signed token for subject that expires after ttl.
func (s *JwtService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := s.now().UTC()
	claims := operatorClaims{
		Scope: operatorScope,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Verify parses and validates a token, returning its subject.
func (s *JwtService) Verify(tokenString string) (string, error) {
	var claims operatorClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, s.getSigningKey)
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Scope != operatorScope || !claims.VerifyIssuer(s.issuer, true) {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
