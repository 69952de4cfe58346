package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTimestamp возвращается, когда строка времени не соответствует
// формату ISO-8601 с суффиксом Z.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

const timestampLayout = "2006-01-02T15:04:05"

// ParseTimestamp разбирает строку вида "2025-01-01T00:00:00Z" в time.Time.
// Суффикс Z обязателен и интерпретируется как UTC, числовые смещения зон
// не принимаются. Дробные секунды допустимы.
func ParseTimestamp(raw string) (time.Time, error) {
	trimmed, found := strings.CutSuffix(raw, "Z")
	if !found {
		return time.Time{}, fmt.Errorf("%w: %q: missing Z suffix", ErrMalformedTimestamp, raw)
	}

	ts, err := time.ParseInLocation(timestampLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, raw)
	}
	return ts, nil
}

// FormatTimestamp - обратная операция к ParseTimestamp.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(timestampLayout) + "Z"
}
