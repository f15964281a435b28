package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed token, expired token, missing subject. Callers are
// deliberately not told which one it was.
var ErrInvalidToken = errors.New("invalid token")

const DefaultTokenTTL = 10080 * time.Minute // 7 days

type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SubjectContext is what the auth middleware stores in fiber locals after a
// successful token verification.
type SubjectContext struct {
	ID    string
	Email string
}

// GenerateToken issues a signed HS256 token with sub, email and exp claims.
// A non-positive ttl falls back to DefaultTokenTTL.
func GenerateToken(subjectID, email, jwtSecret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateToken verifies signature, algorithm and expiry and returns the
// subject context. Pure function of secret + token + clock.
func ValidateToken(tokenString, jwtSecret string) (*SubjectContext, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &SubjectContext{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}

// ExtractTokenFromHeader pulls the token out of "Authorization: Bearer <token>".
func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// GetSubjectFromContext reads the verified subject set by the auth middleware.
func GetSubjectFromContext(c *fiber.Ctx) (*SubjectContext, error) {
	subject := c.Locals("subject")
	if subject == nil {
		return nil, errors.New("subject not found in context")
	}

	subjectCtx, ok := subject.(*SubjectContext)
	if !ok {
		return nil, errors.New("invalid subject context type")
	}

	return subjectCtx, nil
}
