package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

var statusByKind = map[Kind]int{
	KindNotFound:               http.StatusNotFound,
	KindValidation:             http.StatusBadRequest,
	KindOverlap:                http.StatusConflict,
	KindOutOfAvailability:      http.StatusUnprocessableEntity,
	KindScheduleConflict:       http.StatusConflict,
	KindUnauthorized:           http.StatusForbidden,
	KindInvalidStateTransition: http.StatusConflict,
}

var messageByKind = map[Kind]string{
	KindNotFound:               "Recurso não encontrado.",
	KindValidation:             "Dados inválidos.",
	KindOverlap:                "Já existe um bloco de disponibilidade que se sobrepõe ao horário informado.",
	KindOutOfAvailability:      "Horário fora da disponibilidade do profissional.",
	KindScheduleConflict:       "Horário já ocupado.",
	KindUnauthorized:           "Você não tem permissão para esta operação.",
	KindInvalidStateTransition: "Operação não permitida no status atual do agendamento.",
}

// Respond escreve err como resposta JSON. Erros que não são de negócio
// viram 500 e ficam em c.Errors para o logger de requisições.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		_ = c.Error(err)
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	Write(c, statusByKind[be.Kind], be.Code, messageByKind[be.Kind])
}
