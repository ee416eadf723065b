package util

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIResponse is the success envelope: {"result": ...}.
type APIResponse struct {
	Result interface{} `json:"result"`
}

// APIErrorResponse is the error envelope: {"detail": "..."}.
type APIErrorResponse struct {
	Detail string `json:"detail" example:"La conexión con la base de datos no está disponible."`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Data interface{}
}

// Contains function is to check item whether is exist or not in a list and will return bool
func Contains(d string, dl []string) bool {
	for _, v := range dl {
		if v == d {
			return true
		}
	}
	return false
}

// Detail renders the message followed by the underlying error, if any.
func (p APIErrorParams) Detail() string {
	switch {
	case p.Err == nil:
		return p.Msg
	case p.Msg == "":
		return p.Err.Error()
	default:
		return p.Msg + ": " + p.Err.Error()
	}
}

func callError(c *gin.Context, status int, params APIErrorParams) {
	if params.Err != nil {
		_ = c.Error(params.Err)
	}
	c.AbortWithStatusJSON(status, APIErrorResponse{Detail: params.Detail()})
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusNotFound, params)
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusBadRequest, params)
}

// CallValidationError answers 422 for parameters that fail parsing or validation.
func CallValidationError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusUnprocessableEntity, params)
}

// CallTooManyRequests answers 429 once a rate limit is exhausted.
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusTooManyRequests, params)
}

// CallServerError is for return API response server error
func CallServerError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusInternalServerError, params)
}

// CallServiceUnavailable answers 503 when the database engine is missing.
func CallServiceUnavailable(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusServiceUnavailable, params)
}

// CallSuccessOK is for return API response with status code 200 wrapping data under "result"
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{Result: params.Data})
}

// NormalizeName normalizes a name by trimming leading/trailing whitespace
// and collapsing multiple internal spaces into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
