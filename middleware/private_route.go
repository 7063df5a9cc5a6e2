package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// PrivateRoute lets signed-in users through and redirects everyone else
// to redirectTo. It must run after Identify.
func PrivateRoute(redirectTo string) func(c *fiber.Ctx) error {
	if redirectTo == "" {
		redirectTo = "/"
	}
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) != nil {
			return c.Next()
		}
		return c.Redirect(redirectTo, fiber.StatusFound)
	}
}
