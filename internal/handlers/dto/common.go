package dto

// DateLayout é o formato de data usado em toda a API (ISO 8601, só data)
const DateLayout = "2006-01-02"

// ErrorResponse é o corpo de toda resposta de erro da API
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse cria o corpo de erro padrão
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
