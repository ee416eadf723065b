package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/model"
)

type requestSpec struct {
	method       string
	registerPath string
	requestPath  string
	handler      gin.HandlerFunc
	headers      map[string]string
}

// performRequest serves the request and decodes a JSON body when there is one.
func performRequest(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	req := httptest.NewRequest(spec.method, spec.requestPath, nil)
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

func doRequestWithHandler(t *testing.T, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	if spec.method == "" {
		spec.method = http.MethodGet
	}
	r := gin.New()
	r.Handle(spec.method, spec.registerPath, spec.handler)
	w, body, err := performRequest(r, spec)
	require.NoError(t, err)
	return w, body
}

var testDBSeq atomic.Int64

// setupTestDB opens a private in-memory SQLite database with the given models migrated.
func setupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:endpoint_%d_%d?mode=memory&cache=shared", testDBSeq.Add(1), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	if len(models) > 0 {
		require.NoError(t, db.AutoMigrate(models...))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestProvider(t *testing.T, db *gorm.DB) *database.Provider {
	t.Helper()
	p := database.NewProvider(context.Background(), db, nil, nil)
	require.True(t, p.Available())
	return p
}

func unavailableProvider() *database.Provider {
	return database.NewProvider(context.Background(), nil, errors.New("login failed for user 'geresa'"), nil)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedSourceTables loads a small HISMINSA extract:
//
//	patient 45678912 (DNI) with visits V1 (two labs, 2025-03-10), V2 (no labs,
//	2025-06-01), V3 (2024, other year) and V4 (unknown facility);
//	patient 11111111 (CE) with no visits.
func seedSourceTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	birth := date(1990, time.December, 31)
	registered := time.Date(2025, time.March, 10, 8, 15, 0, 0, time.UTC)

	records := []interface{}{
		&model.TipoDocumento{IDTipoDocumento: 1, AbrevTipoDoc: "DNI"},
		&model.TipoDocumento{IDTipoDocumento: 2, AbrevTipoDoc: "CE"},
		&model.Paciente{IDPaciente: "P1", IDTipoDocumento: 1, NumeroDocumento: "45678912", FechaNacimiento: &birth, Genero: strPtr("F")},
		&model.Paciente{IDPaciente: "P2", IDTipoDocumento: 2, NumeroDocumento: "11111111", Genero: strPtr("M")},
		&model.Establecimiento{CodEstab: "00002301", EstNombre: "C.S. Santiago", DescDist: strPtr("SANTIAGO"), DescProv: strPtr("CUSCO")},
		&model.ItemCIE{CodigoItem: "Z001", DescripcionItem: "Examen general"},
		&model.ItemCIE{CodigoItem: "85018", DescripcionItem: "Dosaje de hemoglobina"},
		&model.Sistema{IDSistema: 1, DescripcionSistema: "HISMINSA"},
		&model.Registrador{IDRegistrador: "R1", NombresRegistrador: strPtr("Ana"), ApellidoPaternoRegistrador: strPtr("Quispe")},
		&model.Atencion{IDCita: "V1", IDPaciente: "P1", Anio: 2025, FechaAtencion: date(2025, time.March, 10), TipoDiagnostico: "D", CodigoItem: "Z001",
			IDCorrelativoLab: intPtr(1), ValorLab: strPtr("TA"), FechaRegistro: &registered, Renipress: "00002301", IDAplicacionOrigen: intPtr(1), IDRegistrador: strPtr("R1")},
		&model.Atencion{IDCita: "V1", IDPaciente: "P1", Anio: 2025, FechaAtencion: date(2025, time.March, 10), TipoDiagnostico: "D", CodigoItem: "Z001",
			IDCorrelativoLab: intPtr(2), ValorLab: strPtr("12.5"), FechaRegistro: &registered, Renipress: "00002301", IDAplicacionOrigen: intPtr(1), IDRegistrador: strPtr("R1")},
		&model.Atencion{IDCita: "V2", IDPaciente: "P1", Anio: 2025, FechaAtencion: date(2025, time.June, 1), TipoDiagnostico: "P", CodigoItem: "85018",
			Renipress: "00002301"},
		&model.Atencion{IDCita: "V3", IDPaciente: "P1", Anio: 2024, FechaAtencion: date(2024, time.May, 2), TipoDiagnostico: "D", CodigoItem: "Z001",
			Renipress: "00002301"},
		&model.Atencion{IDCita: "V4", IDPaciente: "P1", Anio: 2025, FechaAtencion: date(2025, time.July, 7), TipoDiagnostico: "D", CodigoItem: "Z001",
			Renipress: "99999999"},
	}
	for _, r := range records {
		require.NoError(t, db.Create(r).Error)
	}
}

// resultRows extracts the "result" array of a success envelope.
func resultRows(t *testing.T, body map[string]interface{}) []map[string]interface{} {
	t.Helper()
	raw, ok := body["result"].([]interface{})
	require.True(t, ok, "result is not an array: %v", body)
	rows := make([]map[string]interface{}, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, r.(map[string]interface{}))
	}
	return rows
}
