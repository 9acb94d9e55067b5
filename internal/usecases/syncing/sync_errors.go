package syncing

import (
	"errors"
)

// Erros específicos do contexto de sincronização. Os dois primeiros são
// rejeitados antes de qualquer trabalho no banco e viram erro de cliente na
// camada HTTP; os demais viram erro de servidor.
var (
	ErrUnknownEntityType = errors.New("tipo de entidade desconhecido")
	ErrEmptyBatch        = errors.New("lote vazio: data deve conter ao menos um registro")

	ErrAcquireConnection = errors.New("erro ao obter conexão transacional com o banco")
	ErrBatchFailed       = errors.New("erro ao processar lote de sincronização")
)
