package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (requisição do cliente)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrInvalidFormat       = "VAL_002" // Formato de dados inválido
	ErrUnknownEntityType   = "VAL_003" // Tipo de entidade desconhecido
	ErrMissingRequiredData = "VAL_004" // Dados obrigatórios ausentes

	// Erros de recurso
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownEntityType:   http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError é o envelope de erro consumido pelo dashboard:
// {"error": mensagem, "details": detalhes opcionais}
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details string) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
