package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero"},
		{1, "One"},
		{7, "Seven"},
		{10, "Ten"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{47, "Forty Seven"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{2360, "Two Thousand Three Hundred Sixty"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{10000000, "One Crore"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
		{999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{1000000000, "One Hundred Crore"},
		{25000000000, "Two Thousand Five Hundred Crore"},
		{1000000000000, "One Lakh Crore"},
		{12345678901234, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Crore Eighty Nine Lakh One Thousand Two Hundred Thirty Four"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, AmountInWords(c.amount), "AmountInWords(%d)", c.amount)
	}
}

func TestAmountInWords_NegativeRendersZero(t *testing.T) {
	assert.Equal(t, "Zero", AmountInWords(-5))
}
