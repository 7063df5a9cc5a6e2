package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/roysitumorang/storefront/helper"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuth guards operator endpoints; passwordHash is a bcrypt hash.
func BasicAuth(username, passwordHash string) func(c *fiber.Ctx) error {
	return basicauth.New(basicauth.Config{
		Authorizer: func(user, password string) bool {
			if username == "" || passwordHash == "" {
				return false
			}
			if subtle.ConstantTimeCompare(helper.String2ByteSlice(user), helper.String2ByteSlice(username)) != 1 {
				return false
			}
			return bcrypt.CompareHashAndPassword(helper.String2ByteSlice(passwordHash), helper.String2ByteSlice(password)) == nil
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return helper.NewResponse(fiber.StatusUnauthorized).SetMessage("Unauthorized").WriteResponse(c)
		},
	})
}
