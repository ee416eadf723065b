package model

import "time"

// The GERESA tables are owned by other systems; this service only reads them.
// These structs name the columns the queries touch and let tests migrate a
// compatible schema.

type Paciente struct {
	IDPaciente      string     `gorm:"column:Id_Paciente;primaryKey"`
	IDTipoDocumento int        `gorm:"column:Id_Tipo_Documento"`
	NumeroDocumento string     `gorm:"column:Numero_Documento;index"`
	FechaNacimiento *time.Time `gorm:"column:Fecha_Nacimiento"`
	Genero          *string    `gorm:"column:Genero"`
}

func (Paciente) TableName() string { return "MAESTRO_PACIENTE" }

type TipoDocumento struct {
	IDTipoDocumento int    `gorm:"column:Id_Tipo_Documento;primaryKey;autoIncrement:false"`
	AbrevTipoDoc    string `gorm:"column:Abrev_Tipo_Doc"`
}

func (TipoDocumento) TableName() string { return "MAESTRO_HIS_TIPO_DOC" }

// Atencion is one HISMINSA row. A visit spans several rows, one per lab value.
type Atencion struct {
	IDCita             string     `gorm:"column:Id_Cita;index"`
	IDPaciente         string     `gorm:"column:Id_Paciente"`
	Anio               int        `gorm:"column:Anio"`
	FechaAtencion      time.Time  `gorm:"column:Fecha_Atencion"`
	TipoDiagnostico    string     `gorm:"column:Tipo_Diagnostico"`
	CodigoItem         string     `gorm:"column:Codigo_Item"`
	IDCorrelativoLab   *int       `gorm:"column:Id_Correlativo_Lab"`
	ValorLab           *string    `gorm:"column:Valor_Lab"`
	FechaRegistro      *time.Time `gorm:"column:Fecha_Registro"`
	FechaModificacion  *time.Time `gorm:"column:Fecha_Modificacion"`
	Renipress          string     `gorm:"column:renipress"`
	IDAplicacionOrigen *int       `gorm:"column:Id_AplicacionOrigen"`
	IDRegistrador      *string    `gorm:"column:Id_Registrador"`
}

func (Atencion) TableName() string { return "HISMINSA" }

// Establecimiento is a RENIPRESS health facility.
type Establecimiento struct {
	CodEstab  string  `gorm:"column:COD_ESTAB;primaryKey"`
	EstNombre string  `gorm:"column:est_nombre"`
	DescDist  *string `gorm:"column:DESC_DIST"`
	DescProv  *string `gorm:"column:DESC_PROV"`
}

func (Establecimiento) TableName() string { return "RENIPRESS" }

// ItemCIE describes a CIE/CPMS diagnosis or procedure code.
type ItemCIE struct {
	CodigoItem      string `gorm:"column:Codigo_Item;primaryKey"`
	DescripcionItem string `gorm:"column:Descripcion_Item"`
}

func (ItemCIE) TableName() string { return "MAESTRO_HIS_CIE_CPMS" }

type Sistema struct {
	IDSistema          int    `gorm:"column:Id_Sistema;primaryKey;autoIncrement:false"`
	DescripcionSistema string `gorm:"column:Descripcion_Sistema"`
}

func (Sistema) TableName() string { return "MAESTRO_HIS_SISTEMA" }

type Registrador struct {
	IDRegistrador              string  `gorm:"column:Id_Registrador;primaryKey"`
	NombresRegistrador         *string `gorm:"column:Nombres_Registrador"`
	ApellidoPaternoRegistrador *string `gorm:"column:Apellido_Paterno_Registrador"`
	ApellidoMaternoRegistrador *string `gorm:"column:Apellido_Materno_Registrador"`
}

func (Registrador) TableName() string { return "MAESTRO_REGISTRADOR" }

// SourceTables lists every table the queries read, in migration order.
var SourceTables = []interface{}{
	&TipoDocumento{},
	&Paciente{},
	&Establecimiento{},
	&ItemCIE{},
	&Sistema{},
	&Registrador{},
	&Atencion{},
}
