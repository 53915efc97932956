package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/marcusnog/playground-backend/internal/apierror"
)

var validate = validator.New()

// exposeInternalErrors lets uncategorized error messages reach the client.
// Enabled only in development; production clients get a generic message while
// the detail goes to the log.
var exposeInternalErrors bool

func ExposeInternalErrors(on bool) { exposeInternalErrors = on }

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false after writing the error response; the caller must return.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var parts []string
		for _, fe := range err.(validator.ValidationErrors) {
			parts = append(parts, fe.Field()+": "+fe.Tag())
		}
		c.JSON(http.StatusBadRequest, apierror.Validation("campos inválidos: "+strings.Join(parts, ", ")))
		return false
	}
	return true
}

// parseID reads the :id route param as a UUID. Returns uuid.Nil and writes
// the error response when malformed.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("id inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDParam parses a UUID carried in a request body field.
func parseUUIDParam(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.Validation("id inválido")
	}
	return id, nil
}

// fail maps a service error onto the standard envelope. Errors outside the
// taxonomy (driver failures, bugs) are logged and, except in development,
// replaced by a generic 500 body.
func fail(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		msg := "erro interno do servidor"
		if exposeInternalErrors {
			msg = err.Error()
		}
		apiErr = apierror.New(http.StatusInternalServerError, msg)
	}
	c.JSON(apiErr.StatusCode, apiErr)
}
