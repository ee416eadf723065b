package endpoint

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/model"
	"github.com/ariebrainware/geresapi/util"
)

const (
	visitSheet   = "Atenciones"
	xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var visitColumnWidths = []float64{6, 14, 13, 16, 40, 10, 10, 10, 20, 20, 35, 30, 16, 32}

// buildVisitWorkbook writes the rows to a single-sheet workbook with a bold,
// frozen header row in model.VisitColumns order.
func buildVisitWorkbook(rows []model.VisitRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), visitSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := make([]interface{}, len(model.VisitColumns))
	for i, name := range model.VisitColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(visitSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(model.VisitColumns))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(visitSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range visitColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(visitSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row.Values()
		if err := f.SetSheetRow(visitSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(visitSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportAtenciones godoc
// @Summary      Exportar atenciones a Excel
// @Description  Mismos parámetros y filas que /atenciones, entregados como libro xlsx
// @Tags         Atenciones
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        anio query int true "Año de atención"
// @Param        ndoc query string true "Número de documento"
// @Param        offset query int false "Filas a omitir" default(0)
// @Param        per_page query int false "Filas por página" default(500)
// @Success      200 {file} binary "Libro de atenciones"
// @Failure      422 {object} util.APIErrorResponse "Parámetros inválidos"
// @Failure      500 {object} util.APIErrorResponse "Error en la base de datos"
// @Failure      503 {object} util.APIErrorResponse "Base de datos no disponible"
// @Router       /atenciones/excel [get]
func ExportAtenciones(provider *database.Provider, maxPerPage int) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, rows, ok := loadAtenciones(c, provider, maxPerPage)
		if !ok {
			return
		}

		data, err := buildVisitWorkbook(rows)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Error al generar el archivo Excel",
				Err: err,
			})
			return
		}

		filename := fmt.Sprintf("atenciones_%s_%d.xlsx", query.Ndoc, *query.Anio)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		c.Data(http.StatusOK, xlsxMIMEType, data)
	}
}
