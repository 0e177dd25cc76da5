package billing

import "strings"

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountInWords spells out a non-negative amount using Indian numbering
// (crore/lakh/thousand/hundred), e.g. 1234567 -> "Twelve Lakh Thirty Four
// Thousand Five Hundred Sixty Seven". Zero renders as "Zero". Negative
// amounts never reach invoices; they render as zero too.
func AmountInWords(n int64) string {
	if n <= 0 {
		return "Zero"
	}

	crore := n / 10000000
	n %= 10000000
	lakh := n / 100000
	n %= 100000
	thousand := n / 1000
	n %= 1000
	hundredPart := n / 100
	n %= 100

	var parts []string
	if crore > 0 {
		// The crore chunk is unbounded; above 99 it rolls over into the
		// Indian scale again (one hundred crore, one lakh crore, ...).
		parts = append(parts, AmountInWords(crore), "Crore")
	}
	if lakh > 0 {
		parts = append(parts, twoDigitWords(lakh), "Lakh")
	}
	if thousand > 0 {
		parts = append(parts, twoDigitWords(thousand), "Thousand")
	}
	if hundredPart > 0 {
		parts = append(parts, onesWords[hundredPart], "Hundred")
	}
	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}

	return strings.Join(parts, " ")
}

func twoDigitWords(n int64) string {
	switch {
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teenWords[n-10]
	case n%10 == 0:
		return tensWords[n/10]
	default:
		return tensWords[n/10] + " " + onesWords[n%10]
	}
}
