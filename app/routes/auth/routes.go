package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/models"
)

// SetupAuthRoutes sets up the auth routes.
func SetupAuthRoutes(app *fiber.App) {
	authAPI := app.Group("/api/auth")

	// Public routes
	authAPI.Post("/login", LoginAPI)
	authAPI.Post("/logout", LogoutAPI)

	// Protected routes
	authAPI.Use(AuthMiddleware)
	authAPI.Get("/me", MeAPI)
	authAPI.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:       claims.UserID,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     models.UserRole(claims.Role),
	}

	c.Locals("user_id", user.ID)
	c.Locals("username", user.Username)
	c.Locals("user_role", string(user.Role))
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the user has one of the required roles.
func RoleMiddleware(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
