package httpapi

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/nrizzio/chat-agent/internal/agent"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// User ids allow only letters, digits, dashes, and underscores.
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r != '-' && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	})

	return v
}

// chatRequest is the POST /api/v1/chat body.
type chatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"user_id" validate:"omitempty,max=255,userid"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, ag *agent.Agent, maxMessageLen int) {
	v1 := app.Group("/api/v1")

	v1.Post("/chat", func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
		}

		req.Message = strings.TrimSpace(req.Message)
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if maxMessageLen > 0 && len(req.Message) > maxMessageLen {
			return fiber.NewError(fiber.StatusBadRequest, "message exceeds maximum length")
		}

		userID := req.UserID
		if userID == "" {
			userID = "default"
		}

		// Dispatch never fails; weather errors become canned responses.
		reply := ag.Respond(c.UserContext(), req.Message, userID)
		return c.JSON(reply)
	})

	v1.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(ag.Status())
	})

	v1.Get("/history", func(c *fiber.Ctx) error {
		userID, err := parseUserIDQuery(c)
		if err != nil {
			return err
		}
		limit := c.QueryInt("limit", 0)

		entries := ag.History(userID, limit)
		return c.JSON(fiber.Map{
			"history": entries,
			"count":   len(entries),
		})
	})

	v1.Delete("/history", func(c *fiber.Ctx) error {
		userID, err := parseUserIDQuery(c)
		if err != nil {
			return err
		}

		ag.ClearHistory(userID)

		cleared := userID
		if cleared == "" {
			cleared = "all"
		}
		return c.JSON(fiber.Map{
			"message": "History cleared successfully",
			"user_id": cleared,
		})
	})
}

func parseUserIDQuery(c *fiber.Ctx) (string, error) {
	userID := c.Query("user_id")
	if userID == "" {
		return "", nil
	}
	if err := validate.Var(userID, "max=255,userid"); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid user_id")
	}
	return userID, nil
}
