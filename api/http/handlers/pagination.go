package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 200
)

// page is a window over an owner's history, echoed back with the items.
type page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	page
}

// parsePage reads ?limit= and ?offset=. A limit above maxPageLimit is
// clamped; malformed or non-positive values fall back to the defaults.
func parsePage(c *fiber.Ctx) page {
	p := page{Limit: defaultPageLimit}
	if n, ok := queryInt(c, "limit"); ok && n > 0 {
		p.Limit = min(n, maxPageLimit)
	}
	if n, ok := queryInt(c, "offset"); ok && n >= 0 {
		p.Offset = n
	}
	return p
}

func queryInt(c *fiber.Ctx, key string) (int, bool) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
