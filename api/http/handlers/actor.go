package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/founderkit/pkg/security/jwt"
	"github.com/artem13815/founderkit/pkg/tools"
)

// actorFrom reads the subject the auth middleware stored; anonymous otherwise.
func actorFrom(c *fiber.Ctx) tools.Actor {
	idStr, _ := c.Locals(jwt.LocalUserID).(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return tools.Actor{}
	}
	return tools.Actor{UserID: id}
}
