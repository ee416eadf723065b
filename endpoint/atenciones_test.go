package endpoint

import (
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariebrainware/geresapi/model"
)

func getAtenciones(t *testing.T, handlerPath string, maxPerPage int, seeded bool) (int, []map[string]interface{}, map[string]interface{}) {
	t.Helper()
	db := setupTestDB(t, model.SourceTables...)
	if seeded {
		seedSourceTables(t, db)
	}
	w, body := doRequestWithHandler(t, requestSpec{
		registerPath: "/atenciones",
		requestPath:  handlerPath,
		handler:      GetAtenciones(newTestProvider(t, db), maxPerPage),
	})
	if w.Code != http.StatusOK {
		return w.Code, nil, body
	}
	return w.Code, resultRows(t, body), body
}

func TestGetAtencionesOneRowPerVisit(t *testing.T) {
	code, rows, _ := getAtenciones(t, "/atenciones?anio=2025&ndoc=45678912", 0, true)

	require.Equal(t, http.StatusOK, code)
	// V3 belongs to 2024 and V4 has no RENIPRESS match.
	require.Len(t, rows, 2)

	latest := rows[0]
	assert.EqualValues(t, 1, latest["N"])
	assert.Equal(t, "V2", latest["Id_Cita"])
	assert.Equal(t, "01-06-2025", latest["F_ATENCION"])
	assert.Equal(t, "P | 85018", latest["Codigo_Item"])
	assert.Equal(t, "Dosaje de hemoglobina", latest["Descripcion_Item"])
	assert.Equal(t, "", latest["LAB1"])
	assert.Equal(t, "", latest["LAB2"])
	assert.Equal(t, "", latest["LAB3"])
	assert.Nil(t, latest["F_REGISTRO"])
	assert.Nil(t, latest["F_MODIFICACION"])
	assert.Nil(t, latest["SISTEMA"])
	assert.Equal(t, "", latest["REGISTRADOR"])

	withLabs := rows[1]
	assert.EqualValues(t, 2, withLabs["N"])
	assert.Equal(t, "V1", withLabs["Id_Cita"])
	assert.Equal(t, "10-03-2025", withLabs["F_ATENCION"])
	assert.Equal(t, "D | Z001", withLabs["Codigo_Item"])
	assert.Equal(t, "TA", withLabs["LAB1"])
	assert.Equal(t, "12.5", withLabs["LAB2"])
	assert.Equal(t, "", withLabs["LAB3"])
	assert.Equal(t, "10-03-2025 08:15:00", withLabs["F_REGISTRO"])
	assert.Equal(t, "C.S. Santiago", withLabs["ESTABLECIMIENTO"])
	assert.Equal(t, "SANTIAGO | CUSCO", withLabs["DISTRITO | PROVINCIA"])
	assert.Equal(t, "HISMINSA", withLabs["SISTEMA"])
	assert.Equal(t, "Ana Quispe", withLabs["REGISTRADOR"])
}

func TestGetAtencionesRowKeys(t *testing.T) {
	code, rows, _ := getAtenciones(t, "/atenciones?anio=2025&ndoc=45678912", 0, true)

	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, rows)
	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, model.VisitColumns, keys)
}

func TestGetAtencionesPagination(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{name: "first page", path: "/atenciones?anio=2025&ndoc=45678912&per_page=1", wantIDs: []string{"V2"}},
		{name: "second page restarts N", path: "/atenciones?anio=2025&ndoc=45678912&offset=1&per_page=1", wantIDs: []string{"V1"}},
		{name: "past the end", path: "/atenciones?anio=2025&ndoc=45678912&offset=5", wantIDs: []string{}},
		{name: "other year", path: "/atenciones?anio=2024&ndoc=45678912", wantIDs: []string{"V3"}},
		{name: "unknown patient", path: "/atenciones?anio=2025&ndoc=00000000", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, rows, _ := getAtenciones(t, tt.path, 0, true)
			require.Equal(t, http.StatusOK, code)
			ids := make([]string, 0, len(rows))
			for i, r := range rows {
				assert.EqualValues(t, i+1, r["N"])
				ids = append(ids, r["Id_Cita"].(string))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestGetAtencionesClampsPerPage(t *testing.T) {
	code, rows, _ := getAtenciones(t, "/atenciones?anio=2025&ndoc=45678912&per_page=500", 1, true)

	require.Equal(t, http.StatusOK, code)
	assert.Len(t, rows, 1)
}

func TestGetAtencionesInvalidParams(t *testing.T) {
	paths := map[string]string{
		"missing anio":      "/atenciones?ndoc=45678912",
		"missing ndoc":      "/atenciones?anio=2025",
		"non-integer anio":  "/atenciones?anio=dos&ndoc=45678912",
		"non-integer page":  "/atenciones?anio=2025&ndoc=45678912&per_page=x",
		"negative offset":   "/atenciones?anio=2025&ndoc=45678912&offset=-1",
		"zero per_page":     "/atenciones?anio=2025&ndoc=45678912&per_page=0",
		"negative per_page": "/atenciones?anio=2025&ndoc=45678912&per_page=-10",
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			code, _, body := getAtenciones(t, path, 0, false)
			assert.Equal(t, http.StatusUnprocessableEntity, code)
			assert.Contains(t, body["detail"], msgInvalidParams)
		})
	}
}

func TestGetAtencionesDatabaseUnavailable(t *testing.T) {
	w, body := doRequestWithHandler(t, requestSpec{
		registerPath: "/atenciones",
		requestPath:  "/atenciones?anio=2025&ndoc=45678912",
		handler:      GetAtenciones(unavailableProvider(), 0),
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, msgDatabaseUnavailable, body["detail"])
}

func TestGetAtencionesQueryFailure(t *testing.T) {
	db := setupTestDB(t, &model.Paciente{})

	w, body := doRequestWithHandler(t, requestSpec{
		registerPath: "/atenciones",
		requestPath:  "/atenciones?anio=2025&ndoc=45678912",
		handler:      GetAtenciones(newTestProvider(t, db), 0),
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["detail"], msgDatabaseError)
}

func TestGetAtencionesPagesComposeIntoOneWindow(t *testing.T) {
	db := setupTestDB(t, model.SourceTables...)
	seedSourceTables(t, db)
	handler := GetAtenciones(newTestProvider(t, db), 0)

	ids := func(path string) []string {
		w, body := doRequestWithHandler(t, requestSpec{registerPath: "/atenciones", requestPath: path, handler: handler})
		require.Equal(t, http.StatusOK, w.Code)
		out := []string{}
		for _, r := range resultRows(t, body) {
			out = append(out, r["Id_Cita"].(string))
		}
		return out
	}

	whole := ids("/atenciones?anio=2025&ndoc=45678912&offset=0&per_page=2")
	first := ids("/atenciones?anio=2025&ndoc=45678912&offset=0&per_page=1")
	second := ids("/atenciones?anio=2025&ndoc=45678912&offset=1&per_page=1")
	assert.Equal(t, whole, append(first, second...))
}

func TestGetAtencionesConcurrentRequestsAreIndependent(t *testing.T) {
	db := setupTestDB(t, model.SourceTables...)
	seedSourceTables(t, db)
	handler := GetAtenciones(newTestProvider(t, db), 0)

	const workers = 4
	bodies := make([]string, workers)
	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := gin.New()
			r.GET("/atenciones", handler)
			w, _, err := performRequest(r, requestSpec{method: http.MethodGet, requestPath: "/atenciones?anio=2025&ndoc=45678912"})
			if err == nil {
				codes[i] = w.Code
				bodies[i] = w.Body.String()
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, http.StatusOK, codes[i])
		assert.JSONEq(t, bodies[0], bodies[i])
	}
}
