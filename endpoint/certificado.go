package endpoint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ariebrainware/geresapi/certificate"
	"github.com/ariebrainware/geresapi/util"
)

const (
	msgInvalidDate   = "Formato de fecha inválido, se espera dd-mm-yyyy"
	msgTemplatePages = "La plantilla del certificado debe tener al menos 2 páginas."
	msgPDFError      = "Error al generar el PDF"
)

type certificadoQuery struct {
	Nombre  string `form:"nombre" binding:"required"`
	Calidad string `form:"calidad" binding:"required"`
	Fecha   string `form:"fecha" binding:"required"`
	Folio   string `form:"folio" binding:"required"`
	Numero  string `form:"numero" binding:"required"`
}

func (q certificadoQuery) request() certificate.Request {
	return certificate.Request{
		Nombre:  q.Nombre,
		Calidad: q.Calidad,
		Fecha:   q.Fecha,
		Folio:   q.Folio,
		Numero:  q.Numero,
	}
}

// GenerateCertificate godoc
// @Summary      Generar certificado en PDF
// @Description  Estampa nombre, calidad y fecha en la página 1 y folio, número y fecha en la página 2 de la plantilla
// @Tags         Certificado
// @Produce      application/pdf
// @Param        nombre query string true "Nombre del participante"
// @Param        calidad query string true "Calidad de participación"
// @Param        fecha query string true "Fecha del evento (dd-mm-yyyy)"
// @Param        folio query string true "Folio"
// @Param        numero query string true "Número de registro"
// @Success      200 {file} binary "Certificado"
// @Failure      400 {object} util.APIErrorResponse "Plantilla con menos de 2 páginas"
// @Failure      404 {object} util.APIErrorResponse "Plantilla no encontrada"
// @Failure      422 {object} util.APIErrorResponse "Parámetros inválidos"
// @Failure      429 {object} util.APIErrorResponse "Demasiadas solicitudes"
// @Failure      500 {object} util.APIErrorResponse "Error al generar el PDF"
// @Router       /certificado/ [get]
func GenerateCertificate(renderer *certificate.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query certificadoQuery
		if !bindQuery(c, &query) {
			return
		}
		req := query.request().Normalize()

		pdf, err := renderer.Render(req)
		if err != nil {
			renderError(c, renderer, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s", req.Filename()))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}

func renderError(c *gin.Context, renderer *certificate.Renderer, err error) {
	switch {
	case errors.Is(err, certificate.ErrInvalidDate):
		util.CallValidationError(c, util.APIErrorParams{Msg: msgInvalidDate})
	case errors.Is(err, certificate.ErrMissingField):
		util.CallValidationError(c, util.APIErrorParams{Msg: msgInvalidParams, Err: err})
	case errors.Is(err, certificate.ErrTemplateNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: fmt.Sprintf("No se encontró la plantilla del certificado en '%s'", renderer.TemplatePath()),
		})
	case errors.Is(err, certificate.ErrTemplatePages):
		util.CallUserError(c, util.APIErrorParams{Msg: msgTemplatePages})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: msgPDFError, Err: err})
	}
}
