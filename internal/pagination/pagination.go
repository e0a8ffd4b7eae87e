// Package pagination carries page/size from the HTTP query down to the
// repositories. Pages are 0-indexed.
package pagination

import "github.com/BruksfildServices01/agenda-scheduler/internal/httperr"

const (
	DefaultSize = 10
	MaxSize     = 100
)

type Page struct {
	Number int
	Size   int
}

// All desliga a paginação (leituras internas, testes).
var All = Page{}

// New valida número e tamanho vindos da query.
func New(number, size int) (Page, error) {
	if number < 0 {
		return Page{}, httperr.ErrValidation("invalid_page")
	}
	if size < 1 || size > MaxSize {
		return Page{}, httperr.ErrValidation("invalid_page_size")
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Unbounded() bool {
	return p.Size <= 0
}

func (p Page) Offset() int {
	if p.Unbounded() {
		return 0
	}
	return p.Number * p.Size
}

// TotalPages devolve 1 para listas sem paginação.
func (p Page) TotalPages(total int64) int {
	if p.Unbounded() {
		return 1
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// Slice recorta items já ordenados. Usado pelos repositórios em memória.
func Slice[T any](items []T, p Page) []T {
	if p.Unbounded() {
		return items
	}
	from := p.Offset()
	if from >= len(items) {
		return []T{}
	}
	to := from + p.Size
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}
