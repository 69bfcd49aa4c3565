package tasking

import "errors"

var (
	ErrTaskNotFound         = errors.New("tarefa não encontrada")
	ErrNotificationNotFound = errors.New("notificação não encontrada")
	ErrContentRequired      = errors.New("o conteúdo da tarefa é obrigatório")
	ErrInvalidTask          = errors.New("dados da tarefa inválidos")
)
