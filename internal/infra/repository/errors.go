package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// notFound troca gorm.ErrRecordNotFound pelo erro de negócio com o código
// informado. Outros erros passam direto.
func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// paginate conta o total da consulta e busca só a página pedida. q precisa
// ter Model definido para o Count.
func paginate[T any](
	q *gorm.DB,
	p pagination.Page,
	order string,
	out *[]T,
) (int64, error) {

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}

	find := q.Order(order)
	if !p.Unbounded() {
		find = find.Offset(p.Offset()).Limit(p.Size)
	}
	if err := find.Find(out).Error; err != nil {
		return 0, err
	}

	return total, nil
}
