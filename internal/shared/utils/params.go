package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/shared/errors"
)

// ParseIDParam parses a numeric path parameter into a record ID.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ParseLimitQuery parses an optional "limit" query parameter, clamped to max.
// A missing or invalid value returns def.
func ParseLimitQuery(c *gin.Context, def, max int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
