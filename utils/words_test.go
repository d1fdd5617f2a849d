package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := map[int64]string{
		21:        "Veintiún pesos",
		31:        "Treinta y un pesos",
		33:        "Treinta y tres pesos",
		100:       "Cien pesos",
		101:       "Ciento un pesos",
		150_000:   "Ciento cincuenta mil pesos",
		21_000:    "Veintiún mil pesos",
		2_900_000: "Dos millones novecientos mil pesos",
		1_000_026: "Un millón veintiséis pesos",
	}
	for n, want := range cases {
		assert.Equal(t, want, AmountInWords(decimal.NewFromInt(n)), "n=%d", n)
	}
}

func TestAmountInWordsIgnoresCents(t *testing.T) {
	assert.Equal(t, "Quinientos pesos", AmountInWords(decimal.RequireFromString("500.75")))
}
