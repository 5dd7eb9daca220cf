package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetQueryParamAsInt reads an integer query parameter, falling back to
// defaultValue when the parameter is absent.
func GetQueryParamAsInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	paramValue := c.Query(paramName)

	if paramValue == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(paramValue)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	if intValue <= 0 {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	return intValue, nil
}

// SplitCSVParam splits a comma-separated multi-select parameter into its
// trimmed, non-empty items. An empty parameter is an empty selection,
// not an error.
func SplitCSVParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ValidateWindow checks that an inclusive year window is ordered.
func ValidateWindow(start, end int, name string) error {
	if end < start {
		return fmt.Errorf("%s end year must not be before start year", name)
	}
	return nil
}
