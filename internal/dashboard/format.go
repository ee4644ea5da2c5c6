package dashboard

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders numbers for display with locale digit grouping.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(tag language.Tag) Formatter {
	return Formatter{p: message.NewPrinter(tag)}
}

func (f Formatter) printer() *message.Printer {
	if f.p == nil {
		return message.NewPrinter(language.AmericanEnglish)
	}
	return f.p
}

// Count renders an integer with grouping: 1234 -> "1,234".
func (f Formatter) Count(n int) string {
	return f.printer().Sprintf("%v", number.Decimal(n))
}

// Currency renders a dollar amount with grouping and at most two fraction
// digits: 800 -> "$800", -1250.5 -> "-$1,250.5".
func (f Formatter) Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}
	return sign + "$" + f.printer().Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
