package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// svPrinter formatea números con la convención sueca: espacio duro (U+00A0)
// como separador de miles y coma decimal.
var svPrinter = message.NewPrinter(language.Swedish)

// FormatOre formatea un monto en öre como string de moneda sv-SE,
// p. ej. 100000 → "1 000,00 kr". Los montos del sistema son no negativos.
//
// Las plantillas de PDF y de email usan esta misma función, de modo que los
// totales visibles coinciden siempre con la salida del calculador.
func FormatOre(ore int64) string {
	return svPrinter.Sprintf("%v,%02d kr", number.Decimal(ore/100), ore%100)
}
