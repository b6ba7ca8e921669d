package entity

// QuoteItem representa una línea de una oferta. LineTotal = cantidad × precio
// unitario, redondeado en öre al convertir desde el decimal de entrada.
type QuoteItem struct {
	ID        string
	QuoteID   string
	Title     string
	Quantity  int
	UnitPrice int64 // öre
	LineTotal int64 // öre
}
