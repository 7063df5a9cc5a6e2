package middleware

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/roysitumorang/storefront/helper"
	"github.com/roysitumorang/storefront/models"
	userModel "github.com/roysitumorang/storefront/modules/user/model"
)

// Identify verifies an optional bearer token from the identity provider
// and stores the user under models.CurrentUser. Requests without a
// token pass through anonymously; a bad token is rejected.
func Identify(publicKey *rsa.PublicKey, issuer, audience string) func(c *fiber.Ctx) error {
	var builder strings.Builder
	_, _ = builder.WriteString("header:")
	_, _ = builder.WriteString(fiber.HeaderAuthorization)
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		options = append(options, jwt.WithAudience(audience))
	}
	parser := jwt.NewParser(options...)
	return keyauth.New(keyauth.Config{
		SuccessHandler: func(c *fiber.Ctx) error {
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, keyauth.ErrMissingOrMalformedAPIKey) {
				return c.Next()
			}
			if err == nil {
				err = errors.New("invalid token")
			}
			return helper.NewResponse(fiber.StatusUnauthorized).SetMessage(err.Error()).WriteResponse(c)
		},
		KeyLookup:  builder.String(),
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, token string) (bool, error) {
			claims, err := bearerVerify(parser, publicKey, token)
			if err != nil {
				return false, err
			}
			c.Locals(models.CurrentUser, claims.User())
			return true, nil
		},
		ContextKey: "token",
	})
}

func bearerVerify(parser *jwt.Parser, publicKey *rsa.PublicKey, tokenString string) (*userModel.Claims, error) {
	var claims userModel.Claims
	token, err := parser.ParseWithClaims(
		tokenString,
		&claims,
		func(_ *jwt.Token) (interface{}, error) {
			return publicKey, nil
		},
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid JWT")
	}
	if claims.Subject == "" {
		return nil, errors.New("sub is required")
	}
	return &claims, nil
}

// CurrentUser returns the verified user of the request, if any.
func CurrentUser(c *fiber.Ctx) *userModel.User {
	user, _ := c.Locals(models.CurrentUser).(*userModel.User)
	return user
}
