package graphqlRoutes

import (
	"context"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// graphqlRequest is the standard GraphQL-over-HTTP POST body
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// SetupGraphQLRoutes registers the single API endpoint plus the explorer.
// The auth gate runs on every request but never rejects one; operations that
// need credentials fail per-field instead.
func SetupGraphQLRoutes(app *fiber.App, schema graphql.Schema) {
	app.Post("/graphql", middleware.AuthContext(), func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		ctx := context.Background()
		if userID, ok := c.Locals(middleware.LocalUserID).(string); ok && userID != "" {
			ctx = middleware.WithUserID(ctx, userID)
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx,
		})

		// Field errors ride inside the 200 response per GraphQL convention
		return c.JSON(result)
	})

	app.Get("/graphql", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(graphiqlPage)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})
}
