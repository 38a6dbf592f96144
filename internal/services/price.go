package services

// Price brackets, in ascending order
const (
	BracketUnder50Lakh = "under-50-lakh"
	Bracket50LakhTo1Cr = "50-lakh-to-1-crore"
	Bracket1CrTo2Cr    = "1-crore-to-2-crore"
	BracketAbove2Crore = "above-2-crore"
)

const (
	fiftyLakh = 5_000_000
	oneCrore  = 10_000_000
	twoCrore  = 20_000_000
)

// PriceBrackets lists every bracket label in ascending price order.
var PriceBrackets = []string{BracketUnder50Lakh, Bracket50LakhTo1Cr, Bracket1CrTo2Cr, BracketAbove2Crore}

// PriceBracket maps a price in rupees onto its bracket using half-open intervals.
func PriceBracket(price int64) string {
	switch {
	case price < fiftyLakh:
		return BracketUnder50Lakh
	case price < oneCrore:
		return Bracket50LakhTo1Cr
	case price < twoCrore:
		return Bracket1CrTo2Cr
	default:
		return BracketAbove2Crore
	}
}

// ValidPriceBracket reports whether label names one of the four brackets.
func ValidPriceBracket(label string) bool {
	for _, b := range PriceBrackets {
		if b == label {
			return true
		}
	}
	return false
}
