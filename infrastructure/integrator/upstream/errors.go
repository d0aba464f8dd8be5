package upstream

import (
	"errors"
	"fmt"
)

// Source identifica a API externa que falhou
type Source string

const (
	SourceShopify Source = "shopify"
	SourceMeta    Source = "meta"
)

// ErrPaginationLimitExceeded indica que o upstream continuou oferecendo
// próxima página depois do limite configurado
var ErrPaginationLimitExceeded = errors.New("pagination limit exceeded")

// Error é a falha de uma chamada externa: status não 2xx ou erro de rede.
// Details carrega o corpo do upstream (JSON decodificado quando possível).
type Error struct {
	Source     Source
	StatusCode int
	Details    any
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream responded with status %d", e.Source, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Source, e.Err.Error())
	}
	return fmt.Sprintf("%s: upstream request failed", e.Source)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PaginationError informa a fonte e quantas páginas foram lidas
type PaginationError struct {
	Source   Source
	MaxPages int
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("%s: %s after %d pages", e.Source, ErrPaginationLimitExceeded.Error(), e.MaxPages)
}

func (e *PaginationError) Unwrap() error {
	return ErrPaginationLimitExceeded
}
