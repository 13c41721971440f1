package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// paramID lee un id de texto del path ("B001", "C-2026-...").
func paramID(c *fiber.Ctx) (string, bool) {
	id := strings.TrimSpace(c.Params("id"))
	return id, id != ""
}

// paramInt64 lee un id numérico del path; ok es false si falta o no es un entero positivo.
func paramInt64(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt64 lee un filtro numérico opcional; vacío devuelve 0.
func queryInt64(c *fiber.Ctx, key string) (int64, bool) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
