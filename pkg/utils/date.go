package utils

import (
	"strings"
	"time"
)

// ParseDate lê uma data YYYY-MM-DD. Valor vazio devolve o fallback.
func ParseDate(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}

	return time.Parse(time.DateOnly, value)
}

// Today é o dia corrente no fuso do servidor, à meia-noite UTC
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
