package domain

import (
	"errors"
	"fmt"
	"time"
)

// Erros sentinela do domínio
var (
	ErrUnknownChartKind   = errors.New("unknown chart kind")
	ErrUnknownTheme       = errors.New("unknown chart theme")
	ErrUnknownField       = errors.New("unknown numeric field")
	ErrInvalidOption      = errors.New("invalid option")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// EmptyInputError indica que o usuário não informou um texto obrigatório.
// Não é uma falha: o chamador mostra Prompt no lugar do resultado.
type EmptyInputError struct {
	Field  string
	Prompt string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input for %q", e.Field)
}

// InvalidRangeError indica que a data final é anterior à data inicial
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s precedes start %s",
		e.End.Format(DateLayout), e.Start.Format(DateLayout))
}
