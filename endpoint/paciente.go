package endpoint

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/model"
	"github.com/ariebrainware/geresapi/util"
)

// maxPatientRows bounds pathological duplicates; it is not pagination.
const maxPatientRows = 10

type pacienteQuery struct {
	Ndoc string `form:"ndoc" binding:"required"`
}

func fetchPacientes(tx *gorm.DB, ndoc string) ([]model.PatientRecord, error) {
	var records []model.PatientRecord
	err := tx.Table("MAESTRO_PACIENTE AS p").
		Distinct(
			"t.Abrev_Tipo_Doc AS Abrev_Tipo_Doc",
			"p.Numero_Documento AS Numero_Documento",
			"p.Fecha_Nacimiento AS Fecha_Nacimiento",
			"p.Genero AS Genero",
		).
		Joins("INNER JOIN MAESTRO_HIS_TIPO_DOC AS t ON t.Id_Tipo_Documento = p.Id_Tipo_Documento").
		Where("p.Numero_Documento = ?", ndoc).
		Order("Numero_Documento, Fecha_Nacimiento").
		Limit(maxPatientRows).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetPaciente godoc
// @Summary      Obtener datos básicos del paciente
// @Description  Busca pacientes por número de documento exacto (máximo 10 filas) con la edad calculada
// @Tags         Paciente
// @Produce      json
// @Param        ndoc query string true "Número de documento"
// @Success      200 {object} util.APIResponse{result=[]model.PatientRow} "Pacientes encontrados"
// @Failure      422 {object} util.APIErrorResponse "Parámetros inválidos"
// @Failure      500 {object} util.APIErrorResponse "Error en la base de datos"
// @Failure      503 {object} util.APIErrorResponse "Base de datos no disponible"
// @Router       /paciente [get]
func GetPaciente(provider *database.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireDatabase(c, provider) {
			return
		}
		var query pacienteQuery
		if !bindQuery(c, &query) {
			return
		}

		var records []model.PatientRecord
		ok := queryDatabase(c, provider, func(tx *gorm.DB) error {
			var err error
			records, err = fetchPacientes(tx, query.Ndoc)
			return err
		})
		if !ok {
			return
		}

		now := time.Now()
		rows := make([]model.PatientRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, r.Row(now))
		}
		util.CallSuccessOK(c, util.APISuccessParams{Data: rows})
	}
}
