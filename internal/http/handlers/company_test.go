package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyLoginStoresTokens(t *testing.T) {
	access := freshToken(t)
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"` + access + `","refresh_token":"cref","company":{"id":"co1","name":"GIGM"}}`))
	})
	h, store := newApp(t, backend)

	rec := perform(h.CompanyLogin, http.MethodPost, "/company/login", "/company/login",
		`{"email":"ops@gigm.example","password":"hunter2hunter2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"co1"`)
	gotAccess, gotRefresh := store.Tokens()
	assert.Equal(t, access, gotAccess)
	assert.Equal(t, "cref", gotRefresh)
}

func TestCompanyLoginValidation(t *testing.T) {
	h, _ := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no backend call for an incomplete login")
	}))

	rec := perform(h.CompanyLogin, http.MethodPost, "/company/login", "/company/login",
		`{"email":"ops@gigm.example"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyAddVehicle(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/vehicles" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"v9","type":"Sienna","capacity":6,"company_id":"co1","is_active":true}`))
	})
	h, store := newApp(t, backend)
	signIn(t, store)

	rec := perform(h.CompanyAddVehicle, http.MethodPost, "/company/vehicles", "/company/vehicles",
		`{"model":"Sienna","plate_number":"ABC-123-XY","capacity":6}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"v9"`)
}

func TestCompanyAddVehicleValidation(t *testing.T) {
	h, store := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no backend call for an invalid vehicle")
	}))
	signIn(t, store)

	rec := perform(h.CompanyAddVehicle, http.MethodPost, "/company/vehicles", "/company/vehicles",
		`{"model":"Sienna","plate_number":"ABC-123-XY","capacity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
