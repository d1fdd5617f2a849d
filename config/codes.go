package config

import "github.com/shopspring/decimal"

// EarningCodes maps payslip concept codes that add into the gross salary to
// their printed labels. Codes are matched at line start inside the concepts
// section; they must never overlap with DeductionCodes.
var EarningCodes = map[string]string{
	"100": "Sueldo Basico",
	"110": "Antiguedad",
	"120": "Presentismo",
	"130": "Horas Extras 50%",
	"140": "Horas Extras 100%",
	"150": "Adicional por Titulo",
	"160": "Adicional Zona",
	"170": "Adicional Funcion",
	"190": "SAC Proporcional",
}

// DeductionCodes maps concept codes that subtract from the gross salary.
var DeductionCodes = map[string]string{
	"900": "Jubilacion",
	"901": "Ley 19032",
	"902": "Obra Social",
	"903": "Cuota Sindical",
	"904": "Impuesto a las Ganancias",
	"905": "Seguro de Vida",
}

// Reasons enumerates the accepted request motives for the note form.
var Reasons = []string{
	"Salud",
	"Vivienda",
	"Educacion",
	"Consumo",
	"Otros",
}

// TopeMaximoPrestamo is the absolute cap on the requested principal.
var TopeMaximoPrestamo = decimal.NewFromInt(5_000_000)
