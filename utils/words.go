package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var wordUnits = []string{
	"cero", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho",
	"nueve", "diez", "once", "doce", "trece", "catorce", "quince",
	"dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte",
	"veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco",
	"veintiséis", "veintisiete", "veintiocho", "veintinueve",
}

var wordTens = []string{
	"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta",
	"ochenta", "noventa",
}

var wordHundreds = []string{
	"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
	"seiscientos", "setecientos", "ochocientos", "novecientos",
}

// AmountInWords renders the integer part of an amount as a Spanish cardinal
// phrase for the note, capitalized and suffixed with the currency name:
// 2900000 -> "Dos millones novecientos mil pesos".
func AmountInWords(d decimal.Decimal) string {
	words := apocope(cardinal(d.IntPart()))
	r, size := utf8.DecodeRuneInString(words)
	words = string(unicode.ToUpper(r)) + words[size:]
	return words + " pesos"
}

// cardinal spells out n in Spanish for 0 <= n < 1e12.
func cardinal(n int64) string {
	switch {
	case n < 0:
		return "menos " + cardinal(-n)
	case n < 30:
		return wordUnits[n]
	case n < 100:
		tens := wordTens[n/10]
		if n%10 == 0 {
			return tens
		}
		return tens + " y " + wordUnits[n%10]
	case n == 100:
		return "cien"
	case n < 1000:
		hundreds := wordHundreds[n/100]
		if n%100 == 0 {
			return hundreds
		}
		return hundreds + " " + cardinal(n%100)
	case n < 1_000_000:
		thousands := "mil"
		if n/1000 > 1 {
			thousands = apocope(cardinal(n/1000)) + " mil"
		}
		if n%1000 == 0 {
			return thousands
		}
		return thousands + " " + cardinal(n%1000)
	default:
		millions := "un millón"
		if n/1_000_000 > 1 {
			millions = apocope(cardinal(n/1_000_000)) + " millones"
		}
		if n%1_000_000 == 0 {
			return millions
		}
		return millions + " " + cardinal(n%1_000_000)
	}
}

// apocope shortens a trailing "uno" before a noun: "veintiuno" -> "veintiún",
// "treinta y uno" -> "treinta y un".
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "uno") + "un"
	}
	return s
}
