// Package format renders summary statistics for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var percentHints = []string{"rate", "ratio", "efficiency"}

// Format renders an arbitrary summary value deterministically. Keys
// containing "rate", "ratio" or "efficiency" mark fractions rendered as
// percentages. The final case makes the function total.
func Format(key string, value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		return v
	case float64:
		return formatNumber(key, v)
	case float32:
		return formatNumber(key, float64(v))
	case int:
		return formatNumber(key, float64(v))
	case int64:
		return formatNumber(key, float64(v))
	default:
		return fmt.Sprintf("%v", value)
	}
}

func formatNumber(key string, f float64) string {
	for _, hint := range percentHints {
		if strings.Contains(key, hint) {
			return fmt.Sprintf("%.1f%%", f*100)
		}
	}
	if f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return groupThousands(int64(f))
	}
	return fmt.Sprintf("%.2f", f)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// PrettyKey turns a snake_case stat name into a title-cased label.
func PrettyKey(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
