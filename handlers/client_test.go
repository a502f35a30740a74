package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"law_records_go/models"
	"law_records_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClient(t *testing.T) {
	t.Run("creates a client and persists it", func(t *testing.T) {
		cfg := newTestConfig(t)
		c, rec := newTestContext(t, cfg, http.MethodPost, "/api/clients",
			`{"id": "CL001", "name": "Jane Doe", "contact": "jane@example.com"}`)

		require.NoError(t, CreateClient(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		clients, err := services.LoadClients(cfg.ClientsFile())
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", clients["CL001"].Name)
	})

	t.Run("invalid ID yields 400", func(t *testing.T) {
		cfg := newTestConfig(t)
		c, rec := newTestContext(t, cfg, http.MethodPost, "/api/clients",
			`{"id": "001", "name": "Jane Doe"}`)

		require.NoError(t, CreateClient(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "client ID")
	})
}

func TestGetClients(t *testing.T) {
	t.Run("missing collection file yields 404", func(t *testing.T) {
		cfg := newTestConfig(t)
		c, rec := newTestContext(t, cfg, http.MethodGet, "/api/clients", "")

		require.NoError(t, GetClients(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns clients indexed by ID", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, services.AddClient(cfg.ClientsFile(), "CL001", "Jane Doe", ""))

		c, rec := newTestContext(t, cfg, http.MethodGet, "/api/clients", "")
		require.NoError(t, GetClients(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var clients map[string]models.Client
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
		assert.Equal(t, "Jane Doe", clients["CL001"].Name)
	})
}

func TestSearchClientsHandler(t *testing.T) {
	t.Run("requires a search term", func(t *testing.T) {
		cfg := newTestConfig(t)
		c, rec := newTestContext(t, cfg, http.MethodGet, "/api/clients/search", "")

		require.NoError(t, SearchClientsHandler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns matches with a count", func(t *testing.T) {
		cfg := newTestConfig(t)
		require.NoError(t, services.AddClient(cfg.ClientsFile(), "CL001", "Jane Doe", ""))
		require.NoError(t, services.AddClient(cfg.ClientsFile(), "CL002", "Acme Corp", ""))

		c, rec := newTestContext(t, cfg, http.MethodGet, "/api/clients/search?q=JANE", "")
		require.NoError(t, SearchClientsHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Results []models.Client `json:"results"`
			Count   int             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, "CL001", body.Results[0].ID)
	})
}

func TestAssignCase(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, services.AddClient(cfg.ClientsFile(), "CL001", "Jane Doe", ""))

	c, rec := newTestContext(t, cfg, http.MethodPost, "/api/clients/CL001/cases", `{"case_id": "CA100"}`)
	c.SetParamNames("id")
	c.SetParamValues("CL001")

	require.NoError(t, AssignCase(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	clients, err := services.LoadClients(cfg.ClientsFile())
	require.NoError(t, err)
	assert.Equal(t, []string{"CA100"}, clients["CL001"].Cases)
}
