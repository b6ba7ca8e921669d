package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/pricing"
)

func sek(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestCalculate_EjemploConsulting reproduce el ejemplo de referencia:
// 2 × 500,00 SEK → subtotal 100000 öre, moms 25000, total 125000.
func TestCalculate_EjemploConsulting(t *testing.T) {
	res, err := pricing.Calculate([]pricing.Item{
		{Title: "Consulting", Quantity: 2, UnitPrice: sek("500.00")},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100000), res.Subtotal)
	assert.Equal(t, int64(25000), res.VAT)
	assert.Equal(t, int64(125000), res.Total)
	assert.Equal(t, "SEK", res.Currency)

	require.Len(t, res.Lines, 1)
	assert.Equal(t, int64(50000), res.Lines[0].UnitPrice)
	assert.Equal(t, int64(100000), res.Lines[0].LineTotal)
}

// TestCalculate_RedondeoSobreProducto verifica que el total de línea se
// redondea sobre cantidad × precio decimal, no sobre el unitario redondeado:
// 3 × 0,335 = 1,005 SEK → round(100,5) = 101 öre (y unitario 34 öre).
func TestCalculate_RedondeoSobreProducto(t *testing.T) {
	res, err := pricing.Calculate([]pricing.Item{
		{Title: "Skruv", Quantity: 3, UnitPrice: sek("0.335")},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(34), res.Lines[0].UnitPrice)
	assert.Equal(t, int64(101), res.Lines[0].LineTotal)
	assert.Equal(t, int64(101), res.Subtotal)
}

// TestCalculate_MomsMitadHaciaArriba: subtotal 2 öre → moms round(0,5) = 1 öre.
func TestCalculate_MomsMitadHaciaArriba(t *testing.T) {
	res, err := pricing.Calculate([]pricing.Item{
		{Title: "Mini", Quantity: 1, UnitPrice: sek("0.02")},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Subtotal)
	assert.Equal(t, int64(1), res.VAT)
	assert.Equal(t, int64(3), res.Total)
}

// TestCalculate_SubtotalEsSumaDeLineas: propiedad subtotal == Σ lineTotal
// y total == subtotal + moms para una lista de varias líneas.
func TestCalculate_SubtotalEsSumaDeLineas(t *testing.T) {
	res, err := pricing.Calculate([]pricing.Item{
		{Title: "Konsulttimmar", Quantity: 10, UnitPrice: sek("1200.50")},
		{Title: "Resor", Quantity: 2, UnitPrice: sek("349.99")},
		{Title: "Licens", Quantity: 1, UnitPrice: sek("0.00")},
	})
	require.NoError(t, err)

	var sum int64
	for _, l := range res.Lines {
		sum += l.LineTotal
	}
	assert.Equal(t, sum, res.Subtotal)
	assert.Equal(t, res.Subtotal+res.VAT, res.Total)
	assert.Equal(t, int64(1200050+69998), res.Subtotal)
}

// TestCalculate_EntradaInvalida: lista vacía, cantidad cero o precio negativo.
func TestCalculate_EntradaInvalida(t *testing.T) {
	_, err := pricing.Calculate(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = pricing.Calculate([]pricing.Item{{Title: "X", Quantity: 0, UnitPrice: sek("10")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = pricing.Calculate([]pricing.Item{{Title: "X", Quantity: 1, UnitPrice: sek("-1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCalculate_PrecioGratisEsValido: precio 0 es válido (no negativo).
func TestCalculate_PrecioGratisEsValido(t *testing.T) {
	res, err := pricing.Calculate([]pricing.Item{
		{Title: "Gratis", Quantity: 5, UnitPrice: decimal.Zero},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Total)
}
