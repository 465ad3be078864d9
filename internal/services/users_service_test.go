package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/domain"
)

func TestUploadFileMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/upload-file", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "avatar", r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		w.Write([]byte(`{"file_url":"https://cdn.odyss.ng/me.png","message":"uploaded"}`))
	})
	client, _ := newBackend(t, mux)
	svc := UsersService{API: client}

	resp, err := svc.UploadFile(context.Background(), "me.png", UploadTypeAvatar, strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.odyss.ng/me.png", resp.FileURL)
}

func TestUploadFileRejectsUnknownType(t *testing.T) {
	svc := UsersService{}
	_, err := svc.UploadFile(context.Background(), "x.bin", "document", strings.NewReader(""))
	assert.True(t, domain.IsValidation(err))
}

func TestCompanyCatalogReads(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/companies", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"co1","company_name":"GIGM","is_verified":true}]`))
	})
	mux.HandleFunc("/users/company_routes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"r1","origin":"Lagos","destination":"Abuja","dep_time":"08:30","company_id":"co1","price":15000}]`))
	})
	mux.HandleFunc("/users/company_vehicles", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"v1","type":"Sienna","capacity":6,"company_id":"co1","is_active":true}]`))
	})
	client, _ := newBackend(t, mux)
	svc := UsersService{API: client}

	companies, err := svc.AllCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "GIGM", companies[0].CompanyName)

	routes, err := svc.AllCompanyRoutes(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, 15000.0, routes[0].Price)

	vehicles, err := svc.AllCompanyVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, 6, vehicles[0].Capacity)
}
