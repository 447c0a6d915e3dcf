package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"leadintake/internal/auth"
)

const (
	loginPath  = "/login"
	verifyPath = "/verify/"
)

// SessionGate protects a path prefix behind the external session provider.
// It is a pure decision function per request: proceed, or redirect.
//
// Unauthenticated callers are sent to the login page with the original path
// preserved as callbackUrl; authenticated but unverified callers are sent to
// their per-user verification page.
type SessionGate struct {
	reader auth.TokenReader
	cookie string
	prefix string
}

// NewSessionGate builds a gate for the given protected prefix. cookie is the
// name of the session cookie carrying the opaque token.
func NewSessionGate(reader auth.TokenReader, cookie, protectedPrefix string) *SessionGate {
	return &SessionGate{reader: reader, cookie: cookie, prefix: protectedPrefix}
}

// Handler returns the fiber middleware handler.
func (g *SessionGate) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !strings.HasPrefix(path, g.prefix) {
			return c.Next()
		}

		raw := c.Cookies(g.cookie)
		if raw == "" {
			return redirectToLogin(c, path)
		}

		token, err := g.reader.ReadToken(c.UserContext(), raw)
		if err != nil || token == nil {
			return redirectToLogin(c, path)
		}

		if !token.Verified {
			return c.Redirect(verifyPath+token.Username, fiber.StatusTemporaryRedirect)
		}

		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx, originalPath string) error {
	target := loginPath + "?callbackUrl=" + url.QueryEscape(originalPath)
	return c.Redirect(target, fiber.StatusTemporaryRedirect)
}
