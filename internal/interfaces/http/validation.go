package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator construye el validador de structs compartido por los handlers.
// Registra "dnonneg": decimal.Decimal no negativo (gte=0 no opera sobre
// decimales), así un precio negativo falla con detalle de campo.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("dnonneg", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
	return v
}

// validationDetails aplana los errores de validator a campo → regla violada,
// para el detalle campo a campo de los 400.
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Namespace sin el nombre del struct raíz: "customer.name" y no
		// "CreateQuoteRequest.Customer.Name".
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		details[strings.ToLower(ns)] = fe.Tag()
	}
	return details
}
