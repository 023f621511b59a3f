package utils

import (
	"fmt"
	"strings"
)

// Fixed conversion rates into ZAR. Real rates would come from an external
// feed; these match what the pricing screens assume.
var zarRates = map[string]float64{
	"USD": 18.50,
	"EUR": 20.00,
	"GBP": 23.00,
	"ZAR": 1.00,
}

func formatThousands(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], parts[1]

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

func FormatToRands(amount float64) string {
	return "R" + formatThousands(amount)
}

func FormatToRandsNoSymbol(amount float64) string {
	return formatThousands(amount) + " ZAR"
}

// ConvertToRands converts an amount into ZAR. Unknown currencies come back
// unchanged.
func ConvertToRands(amount float64, fromCurrency string) float64 {
	if rate, ok := zarRates[strings.ToUpper(fromCurrency)]; ok {
		return amount * rate
	}
	return amount
}
