package model

import "time"

const isoDate = "2006-01-02"

// PatientRecord is the scan target of the patient lookup.
type PatientRecord struct {
	AbrevTipoDoc    string     `gorm:"column:Abrev_Tipo_Doc"`
	NumeroDocumento string     `gorm:"column:Numero_Documento"`
	FechaNacimiento *time.Time `gorm:"column:Fecha_Nacimiento"`
	Genero          *string    `gorm:"column:Genero"`
}

// PatientRow is the wire projection returned by GET /paciente.
type PatientRow struct {
	AbrevTipoDoc    string  `json:"Abrev_Tipo_Doc" example:"DNI"`
	NumeroDocumento string  `json:"Numero_Documento" example:"45678912"`
	FechaNacimiento *string `json:"Fecha_Nacimiento" example:"1990-05-17"`
	Genero          *string `json:"Genero" example:"F"`
	Edad            *int    `json:"EDAD" example:"35"`
}

// Row projects the record for the wire. EDAD is the calendar-year difference
// between now and the birth date, regardless of month and day.
func (r PatientRecord) Row(now time.Time) PatientRow {
	row := PatientRow{
		AbrevTipoDoc:    r.AbrevTipoDoc,
		NumeroDocumento: r.NumeroDocumento,
		Genero:          r.Genero,
	}
	if r.FechaNacimiento != nil {
		birth := r.FechaNacimiento.Format(isoDate)
		age := now.Year() - r.FechaNacimiento.Year()
		row.FechaNacimiento = &birth
		row.Edad = &age
	}
	return row
}
