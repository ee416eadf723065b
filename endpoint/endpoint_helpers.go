package endpoint

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/util"
)

const (
	msgDatabaseUnavailable = "La conexión con la base de datos no está disponible."
	msgDatabaseError       = "Error en la base de datos"
	msgInvalidParams       = "Parámetros inválidos"
)

// bindQuery binds and validates the query string into dst, answering 422 on failure.
func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		util.CallValidationError(c, util.APIErrorParams{
			Msg: msgInvalidParams,
			Err: err,
		})
		return false
	}
	return true
}

// requireDatabase answers 503 when the provider never got an engine.
func requireDatabase(c *gin.Context, provider *database.Provider) bool {
	if !provider.Available() {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: msgDatabaseUnavailable})
		return false
	}
	return true
}

// queryDatabase runs fn on a scoped connection and writes the error response
// when it fails. It returns true when fn succeeded.
func queryDatabase(c *gin.Context, provider *database.Provider, fn func(tx *gorm.DB) error) bool {
	err := provider.WithConnection(c.Request.Context(), fn)
	switch {
	case err == nil:
		return true
	case errors.Is(err, database.ErrUnavailable):
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: msgDatabaseUnavailable})
	default:
		util.CallServerError(c, util.APIErrorParams{
			Msg: msgDatabaseError,
			Err: err,
		})
	}
	return false
}
