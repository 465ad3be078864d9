package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatNaira renders an amount as "₦12,500" with thousand separators.
// Fractional kobo are kept only when present.
func FormatNaira(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	frac := amount - float64(whole)
	out := sign + "₦" + formatThousand(whole)
	if frac > 0.004 {
		out += fmt.Sprintf(".%02d", int(math.Round(frac*100)))
	}
	return out
}

// ParseNaira parses "₦12,500" or "12500" into a float amount.
func ParseNaira(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₦")
	s = strings.TrimPrefix(strings.ToLower(s), "ngn")
	replacer := strings.NewReplacer(",", "", " ", "")
	s = strings.TrimSpace(replacer.Replace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid naira amount")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
