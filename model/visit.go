package model

import (
	"strings"
	"time"
)

const (
	dayMonthYear     = "02-01-2006"
	dayMonthYearTime = "02-01-2006 15:04:05"
)

// VisitRecord is the scan target of the visit history query: one row per
// visit after the lab values have been folded into LAB1..LAB3.
type VisitRecord struct {
	IDCita            string     `gorm:"column:Id_Cita"`
	FechaAtencion     time.Time  `gorm:"column:Fecha_Atencion"`
	TipoDiagnostico   *string    `gorm:"column:Tipo_Diagnostico"`
	CodigoItem        *string    `gorm:"column:Codigo_Item"`
	DescripcionItem   *string    `gorm:"column:Descripcion_Item"`
	Lab1              string     `gorm:"column:LAB1"`
	Lab2              string     `gorm:"column:LAB2"`
	Lab3              string     `gorm:"column:LAB3"`
	FechaRegistro     *time.Time `gorm:"column:Fecha_Registro"`
	FechaModificacion *time.Time `gorm:"column:Fecha_Modificacion"`
	Establecimiento   *string    `gorm:"column:ESTABLECIMIENTO"`
	Distrito          *string    `gorm:"column:DESC_DIST"`
	Provincia         *string    `gorm:"column:DESC_PROV"`
	Sistema           *string    `gorm:"column:SISTEMA"`
	Nombres           *string    `gorm:"column:Nombres_Registrador"`
	ApellidoPaterno   *string    `gorm:"column:Apellido_Paterno_Registrador"`
	ApellidoMaterno   *string    `gorm:"column:Apellido_Materno_Registrador"`
}

// VisitRow is the wire projection returned by GET /atenciones.
type VisitRow struct {
	N                 int     `json:"N" example:"1"`
	IDCita            string  `json:"Id_Cita" example:"C-000123"`
	FAtencion         string  `json:"F_ATENCION" example:"13-10-2025"`
	CodigoItem        string  `json:"Codigo_Item" example:"D | Z001"`
	DescripcionItem   *string `json:"Descripcion_Item" example:"Examen general"`
	Lab1              string  `json:"LAB1" example:"TA"`
	Lab2              string  `json:"LAB2" example:""`
	Lab3              string  `json:"LAB3" example:""`
	FRegistro         *string `json:"F_REGISTRO" example:"13-10-2025 08:15:00"`
	FModificacion     *string `json:"F_MODIFICACION" example:"13-10-2025 09:00:00"`
	Establecimiento   string  `json:"ESTABLECIMIENTO" example:"C.S. Santiago"`
	DistritoProvincia string  `json:"DISTRITO | PROVINCIA" example:"SANTIAGO | CUSCO"`
	Sistema           *string `json:"SISTEMA" example:"HISMINSA"`
	Registrador       string  `json:"REGISTRADOR" example:"Ana Quispe Mamani"`
}

// VisitColumns is the wire column order, shared by the JSON rows and the spreadsheet export.
var VisitColumns = []string{
	"N", "Id_Cita", "F_ATENCION", "Codigo_Item", "Descripcion_Item",
	"LAB1", "LAB2", "LAB3", "F_REGISTRO", "F_MODIFICACION",
	"ESTABLECIMIENTO", "DISTRITO | PROVINCIA", "SISTEMA", "REGISTRADOR",
}

// Row projects the record for the wire; n is its 1-based position in the page.
func (r VisitRecord) Row(n int) VisitRow {
	return VisitRow{
		N:                 n,
		IDCita:            r.IDCita,
		FAtencion:         r.FechaAtencion.Format(dayMonthYear),
		CodigoItem:        deref(r.TipoDiagnostico) + " | " + deref(r.CodigoItem),
		DescripcionItem:   r.DescripcionItem,
		Lab1:              r.Lab1,
		Lab2:              r.Lab2,
		Lab3:              r.Lab3,
		FRegistro:         formatTime(r.FechaRegistro),
		FModificacion:     formatTime(r.FechaModificacion),
		Establecimiento:   deref(r.Establecimiento),
		DistritoProvincia: deref(r.Distrito) + " | " + deref(r.Provincia),
		Sistema:           r.Sistema,
		Registrador:       RegistrarName(r.Nombres, r.ApellidoPaterno, r.ApellidoMaterno),
	}
}

// Values returns the row in VisitColumns order.
func (v VisitRow) Values() []interface{} {
	return []interface{}{
		v.N, v.IDCita, v.FAtencion, v.CodigoItem, deref(v.DescripcionItem),
		v.Lab1, v.Lab2, v.Lab3, deref(v.FRegistro), deref(v.FModificacion),
		v.Establecimiento, v.DistritoProvincia, deref(v.Sistema), v.Registrador,
	}
}

// RegistrarName joins the name parts with single spaces, treating missing
// parts as empty, and trims the ends. Inner double spaces are kept.
func RegistrarName(nombres, paterno, materno *string) string {
	return strings.TrimSpace(deref(nombres) + " " + deref(paterno) + " " + deref(materno))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dayMonthYearTime)
	return &s
}
