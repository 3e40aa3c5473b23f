package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msomdec/postboard/internal/domain"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// Claims is the signed payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UID      int64  `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithTokenClock injects a custom clock (useful for tests).
func WithTokenClock(clock func() time.Time) TokenOption {
	return func(s *TokenService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// NewTokenService creates a TokenService signing with secret.
func NewTokenService(secret string, opts ...TokenOption) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue mints a token for identity that expires TokenTTL after issuance.
// Issuance time is truncated to whole seconds, the resolution of exp.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := s.now().Truncate(time.Second)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UID:      identity.ID,
		Username: identity.Username,
		Role:     string(identity.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the embedded
// identity as-is. The store is not consulted.
func (s *TokenService) Verify(tokenString string) (domain.Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return domain.Identity{}, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed) && onlySignatureUndecodable(tokenString):
			return domain.Identity{}, domain.ErrTokenSignatureInvalid
		default:
			return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenMalformed, err)
		}
	}

	if claims.UID == 0 || claims.Username == "" || claims.Role == "" {
		return domain.Identity{}, fmt.Errorf("%w: incomplete claims", domain.ErrTokenMalformed)
	}

	return domain.Identity{
		ID:       claims.UID,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}

// onlySignatureUndecodable reports whether the header and claims of a
// three-segment token decode cleanly, so the signature segment is what the
// parser rejected.
func onlySignatureUndecodable(tokenString string) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false
	}
	unsigned := parts[0] + "." + parts[1] + "."
	_, _, err := jwt.NewParser(jwt.WithStrictDecoding()).ParseUnverified(unsigned, &Claims{})
	return err == nil
}
