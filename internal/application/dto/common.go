package dto

// ErrorResponse cuerpo de error HTTP. Details lleva el detalle campo a campo
// de una validación fallida; se omite en el resto de los errores.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
