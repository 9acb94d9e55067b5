package insighting

import (
	"errors"
)

// Erros específicos do contexto de insights
var (
	ErrInsightNotFound      = errors.New("insight não encontrado")
	ErrMissingRequiredField = errors.New("todos os campos são obrigatórios")
	ErrInvalidListPayload   = errors.New("insights e recomendacoes devem ser listas JSON válidas")
	ErrDatabaseOperation    = errors.New("erro de operação de banco de dados")
)
