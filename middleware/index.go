package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"studio_booking/config"
	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func parseClaim(token string) (*model.TokenClaim, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !jwtToken.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	userID, _ := claims["userId"].(float64)
	fullname, _ := claims["fullname"].(string)
	role, _ := claims["role"].(string)
	if userID == 0 {
		return nil, errors.New("invalid claims")
	}

	return &model.TokenClaim{UserId: uint(userID), Fullname: fullname, Role: role}, nil
}

// Protected requires a valid access token and stores the claim in locals.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token")
		}

		claim, err := parseClaim(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals("claim", claim)
		return c.Next()
	}
}

// AdminOnly requires the admin role on top of Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := c.Locals("claim").(*model.TokenClaim)
		if !ok || claim == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED)
		}
		if claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN)
		}
		return c.Next()
	}
}
