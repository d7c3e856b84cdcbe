package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Response is the envelope written by every endpoint.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ErrorResponse documents the failure envelope.
type ErrorResponse struct {
	Success bool     `json:"success" example:"false"`
	Message string   `json:"message" example:"Error de validación"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

const (
	msgValidation      = "Error de validación"
	msgInternal        = "Error interno del servidor"
	msgInvalidGameID   = "ID de juego no válido"
	msgInvalidReviewID = "ID de reseña no válido"
	msgGameNotFound    = "Juego no encontrado"
	msgReviewNotFound  = "Reseña no encontrada"
	msgInvalidQuery    = "Parámetro de consulta no válido"

	// postgres unique_violation
	pgUniqueViolation = "23505"
)

// ok writes a successful envelope.
func ok(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// fail writes a failure envelope with a single message.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// parseID reads a UUID path parameter. On a malformed value it writes a 400
// with invalidMsg and reports false.
func parseID(c *gin.Context, param, invalidMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		fail(c, http.StatusBadRequest, invalidMsg)
		return uuid.Nil, false
	}
	return id, true
}

// bindBody decodes a JSON or URL-encoded body into dst.
// An empty body leaves dst untouched so that validation reports the missing fields.
func bindBody(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError translates err into the matching status and envelope.
// notFoundMsg is used when err is repository.ErrNotFound.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	status, resp := classify(err, true)
	if errors.Is(err, repository.ErrNotFound) && notFoundMsg != "" {
		resp.Message = notFoundMsg
	}
	if status >= http.StatusInternalServerError {
		logging.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, resp)
}

// RespondPanic writes the envelope for a value recovered from a panic.
// The detail of unclassified failures is only exposed when showDetail is set.
func RespondPanic(c *gin.Context, recovered any, showDetail bool) {
	err, isErr := recovered.(error)
	if !isErr {
		err = fmt.Errorf("%v", recovered)
	}
	status, resp := classify(err, showDetail)
	c.AbortWithStatusJSON(status, resp)
}

func classify(err error, showDetail bool) (int, Response) {
	var (
		verr     *validation.Error
		maxBytes *http.MaxBytesError
		syntax   *json.SyntaxError
		typeErr  *json.UnmarshalTypeError
		numErr   *strconv.NumError
		pgErr    *pgconn.PgError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, Response{Message: msgValidation, Errors: verr.Messages()}

	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, Response{
			Message: "Cuerpo de la petición demasiado grande",
			Error:   fmt.Sprintf("El cuerpo no puede exceder %d bytes", maxBytes.Limit),
		}

	case errors.As(err, &syntax), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, Response{
			Message: "JSON error",
			Error:   "Verifica la sintaxis del JSON enviado",
		}

	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return http.StatusBadRequest, Response{
			Message: msgValidation,
			Errors:  []string{fmt.Sprintf("El campo %s tiene un tipo no válido", field)},
		}

	case errors.As(err, &numErr):
		return http.StatusBadRequest, Response{
			Message: msgValidation,
			Errors:  []string{fmt.Sprintf("El valor %q no es válido", numErr.Num)},
		}

	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		field := pgErr.ColumnName
		if field == "" {
			field = strings.TrimSuffix(pgErr.ConstraintName, "_key")
		}
		return http.StatusBadRequest, Response{
			Message: "Recurso duplicado",
			Error:   fmt.Sprintf("El %s ya existe en la base de datos", field),
		}

	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, Response{Message: "Recurso no encontrado"}
	}

	resp := Response{Message: msgInternal, Error: "Algo salió mal"}
	if showDetail {
		resp.Error = err.Error()
	}
	return http.StatusInternalServerError, resp
}
