// Package pricing implementa el cálculo de montos de una oferta en öre
// (unidad menor de SEK) y su formateo según la convención sueca (sv-SE).
//
// Regla de redondeo única en todo el paquete: mitad lejos de cero
// (decimal.Round), equivalente a redondear la mitad hacia arriba para los
// montos no negativos que maneja el sistema.
package pricing

import (
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Currency es la única moneda soportada.
const Currency = "SEK"

// VATRate tasa de IVA sueca (moms) aplicada a toda oferta.
var VATRate = decimal.RequireFromString("0.25")

var hundred = decimal.NewFromInt(100)

// Item línea de entrada: precio unitario decimal en SEK (unidad mayor).
type Item struct {
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineResult línea con montos convertidos a öre.
type LineResult struct {
	Title     string
	Quantity  int
	UnitPrice int64 // öre
	LineTotal int64 // öre
}

// Result montos calculados de la oferta completa.
type Result struct {
	Lines    []LineResult
	Subtotal int64
	VAT      int64
	Total    int64
	Currency string
}

// Calculate convierte cada línea a öre y computa subtotal, IVA y total.
//
// El total de línea se redondea sobre el producto decimal cantidad × precio,
// no sobre el precio unitario ya redondeado: para 3 × 0,335 SEK el total de
// línea es round(100,5) = 101 öre aunque el unitario redondeado sea 34 öre.
//
// Valida lo que el caller no puede expresar en tipos: lista vacía, cantidad
// no positiva o precio negativo devuelven ErrInvalidInput.
func Calculate(items []Item) (*Result, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	res := &Result{
		Lines:    make([]LineResult, 0, len(items)),
		Currency: Currency,
	}
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		unitOre := it.UnitPrice.Mul(hundred).Round(0).IntPart()
		lineOre := it.UnitPrice.
			Mul(decimal.NewFromInt(int64(it.Quantity))).
			Mul(hundred).
			Round(0).
			IntPart()
		res.Lines = append(res.Lines, LineResult{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: unitOre,
			LineTotal: lineOre,
		})
		res.Subtotal += lineOre
	}

	res.VAT = decimal.NewFromInt(res.Subtotal).Mul(VATRate).Round(0).IntPart()
	res.Total = res.Subtotal + res.VAT
	return res, nil
}
