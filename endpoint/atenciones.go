package endpoint

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/model"
	"github.com/ariebrainware/geresapi/util"
)

type atencionesQuery struct {
	Anio    *int   `form:"anio" binding:"required"`
	Ndoc    string `form:"ndoc" binding:"required"`
	Offset  int    `form:"offset,default=0" binding:"min=0"`
	PerPage int    `form:"per_page,default=500" binding:"min=1"`
}

// clamp caps PerPage when a server-side maximum is configured.
func (q *atencionesQuery) clamp(maxPerPage int) {
	if maxPerPage > 0 && q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
}

// Lab values arrive one row each; conditional aggregation folds up to three of
// them into a single row per visit.
const visitSelect = `h.Id_Cita AS Id_Cita,
	h.Fecha_Atencion AS Fecha_Atencion,
	h.Tipo_Diagnostico AS Tipo_Diagnostico,
	h.Codigo_Item AS Codigo_Item,
	c.Descripcion_Item AS Descripcion_Item,
	COALESCE(MAX(CASE WHEN h.Id_Correlativo_Lab = 1 THEN h.Valor_Lab END), '') AS LAB1,
	COALESCE(MAX(CASE WHEN h.Id_Correlativo_Lab = 2 THEN h.Valor_Lab END), '') AS LAB2,
	COALESCE(MAX(CASE WHEN h.Id_Correlativo_Lab = 3 THEN h.Valor_Lab END), '') AS LAB3,
	h.Fecha_Registro AS Fecha_Registro,
	h.Fecha_Modificacion AS Fecha_Modificacion,
	r.est_nombre AS ESTABLECIMIENTO,
	r.DESC_DIST AS DESC_DIST,
	r.DESC_PROV AS DESC_PROV,
	s.Descripcion_Sistema AS SISTEMA,
	re.Nombres_Registrador AS Nombres_Registrador,
	re.Apellido_Paterno_Registrador AS Apellido_Paterno_Registrador,
	re.Apellido_Materno_Registrador AS Apellido_Materno_Registrador`

const visitGroupBy = `h.Id_Cita, h.Fecha_Atencion, h.Tipo_Diagnostico, h.Codigo_Item, c.Descripcion_Item,
	h.Fecha_Registro, h.Fecha_Modificacion, s.Descripcion_Sistema, r.est_nombre,
	r.DESC_DIST, r.DESC_PROV, re.Nombres_Registrador,
	re.Apellido_Paterno_Registrador, re.Apellido_Materno_Registrador`

func fetchAtenciones(tx *gorm.DB, q atencionesQuery) ([]model.VisitRecord, error) {
	var records []model.VisitRecord
	err := tx.Table("HISMINSA AS h").
		Select(visitSelect).
		Joins("INNER JOIN MAESTRO_PACIENTE AS p ON p.Id_Paciente = h.Id_Paciente").
		Joins("INNER JOIN RENIPRESS AS r ON r.COD_ESTAB = h.renipress").
		Joins("LEFT JOIN MAESTRO_HIS_CIE_CPMS AS c ON c.Codigo_Item = h.Codigo_Item").
		Joins("LEFT JOIN MAESTRO_HIS_SISTEMA AS s ON s.Id_Sistema = h.Id_AplicacionOrigen").
		Joins("LEFT JOIN MAESTRO_REGISTRADOR AS re ON re.Id_Registrador = h.Id_Registrador").
		Where("p.Numero_Documento = ? AND h.Anio = ?", q.Ndoc, *q.Anio).
		Group(visitGroupBy).
		Order("h.Fecha_Atencion DESC, h.Id_Cita").
		Offset(q.Offset).
		Limit(q.PerPage).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// visitRows numbers the page from 1; N is only a display position.
func visitRows(records []model.VisitRecord) []model.VisitRow {
	rows := make([]model.VisitRow, 0, len(records))
	for i, r := range records {
		rows = append(rows, r.Row(i+1))
	}
	return rows
}

// loadAtenciones is shared by the JSON and spreadsheet handlers. It writes the
// error response itself and reports whether rows are valid.
func loadAtenciones(c *gin.Context, provider *database.Provider, maxPerPage int) (atencionesQuery, []model.VisitRow, bool) {
	var query atencionesQuery
	if !requireDatabase(c, provider) {
		return query, nil, false
	}
	if !bindQuery(c, &query) {
		return query, nil, false
	}
	query.clamp(maxPerPage)

	var records []model.VisitRecord
	ok := queryDatabase(c, provider, func(tx *gorm.DB) error {
		var err error
		records, err = fetchAtenciones(tx, query)
		return err
	})
	if !ok {
		return query, nil, false
	}
	return query, visitRows(records), true
}

// GetAtenciones godoc
// @Summary      Obtener atenciones por año y documento
// @Description  Historial de atenciones del paciente en un año, una fila por cita, ordenado por fecha de atención descendente
// @Tags         Atenciones
// @Produce      json
// @Param        anio query int true "Año de atención"
// @Param        ndoc query string true "Número de documento"
// @Param        offset query int false "Filas a omitir" default(0)
// @Param        per_page query int false "Filas por página" default(500)
// @Success      200 {object} util.APIResponse{result=[]model.VisitRow} "Atenciones encontradas"
// @Failure      422 {object} util.APIErrorResponse "Parámetros inválidos"
// @Failure      500 {object} util.APIErrorResponse "Error en la base de datos"
// @Failure      503 {object} util.APIErrorResponse "Base de datos no disponible"
// @Router       /atenciones [get]
func GetAtenciones(provider *database.Provider, maxPerPage int) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, rows, ok := loadAtenciones(c, provider, maxPerPage)
		if !ok {
			return
		}
		util.CallSuccessOK(c, util.APISuccessParams{Data: rows})
	}
}
