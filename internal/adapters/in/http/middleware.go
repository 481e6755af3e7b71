package http

import (
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyEmail = "actor_email"
	contextKeyRole  = "actor_role"
)

// AuthMiddleware verifies the bearer token and stores the actor's email and
// role in the request context. Token issuance is external; only HMAC
// verification lives here.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return unauthenticated(c)
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthenticated(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthenticated(c)
			}

			email, _ := claims["email"].(string)
			roleName, _ := claims["role"].(string)
			role, err := kernel.RoleFromString(roleName)
			if email == "" || err != nil {
				return unauthenticated(c)
			}

			c.Set(contextKeyEmail, email)
			c.Set(contextKeyRole, role)
			return next(c)
		}
	}
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    errs.ErrUnauthenticated.Code(),
		Message: errs.ErrUnauthenticated.Message(),
	})
}

// actorEmail returns the authenticated email stored by AuthMiddleware.
func actorEmail(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)
	return email
}

// actorRole returns the authenticated role stored by AuthMiddleware.
func actorRole(c echo.Context) kernel.Role {
	role, _ := c.Get(contextKeyRole).(kernel.Role)
	return role
}
