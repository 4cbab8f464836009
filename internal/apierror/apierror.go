// Package apierror define o envelope padronizado de erro da API. Todo erro
// devolvido ao cliente passa por aqui, garantindo consistência e evitando
// vazar detalhes internos (stack traces, erros de banco, etc.).
package apierror

// APIError é o envelope canônico de toda resposta HTTP 4xx/5xx.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError embrulha múltiplos erros de campo.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
