package http

import (
	"errors"
	"net/http"
	"strings"

	"b2better/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var ErrMissingPrincipal = echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")

// Principal is the authenticated caller taken from the bearer token.
type Principal struct {
	UserID kernel.UUID
	Name   string
	Email  string
	Role   string
}

// Claims are the JWT claims issued by the identity service.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenValidator checks HS256 bearer tokens.
type TokenValidator struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenValidator(secret string) (*TokenValidator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenValidator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Validate parses the token and builds the principal. The subject must be the user UUID.
func (v *TokenValidator) Validate(tokenString string) (Principal, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !token.Valid {
		return Principal{}, errors.New("invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, err
	}
	if err = userID.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{UserID: userID, Name: claims.Name, Email: claims.Email, Role: claims.Role}, nil
}

// Issue signs a token for the principal. Only used by tests and local tooling;
// token issuance for real users belongs to the identity service.
func (v *TokenValidator) Issue(p Principal, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = p.UserID.String()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: claims,
		Name:             p.Name,
		Email:            p.Email,
		Role:             p.Role,
	})
	return token.SignedString(v.secret)
}

// Authenticate rejects requests without a valid bearer token, except the
// public paths.
func Authenticate(validator *TokenValidator, publicPaths ...string) echo.MiddlewareFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, isPublic := public[c.Request().URL.Path]; isPublic {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}
			scheme, tokenString, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			p, err := validator.Validate(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token").SetInternal(err)
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (Principal, error) {
	p, found := c.Get(principalKey).(Principal)
	if !found {
		return Principal{}, ErrMissingPrincipal
	}
	return p, nil
}

// actor is the name recorded in order timelines.
func (p Principal) actor() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Email != "" {
		return p.Email
	}
	return p.UserID.String()
}
