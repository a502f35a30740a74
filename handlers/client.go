package handlers

import (
	"net/http"

	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

// CreateClientRequest is the payload for registering a new client.
type CreateClientRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// GetClients returns every client, indexed by ID.
// GET /api/clients
func GetClients(c echo.Context) error {
	cfg := getConfig(c)

	clients, err := services.LoadClients(cfg.ClientsFile())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, clients)
}

// CreateClient registers a new client record.
// POST /api/clients
func CreateClient(c echo.Context) error {
	cfg := getConfig(c)

	req := new(CreateClientRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.AddClient(cfg.ClientsFile(), req.ID, req.Name, req.Contact); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": req.ID})
}

// SearchClientsHandler finds clients matching a term in any field.
// GET /api/clients/search?q=term
func SearchClientsHandler(c echo.Context) error {
	cfg := getConfig(c)

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing search term",
		})
	}

	results, err := services.SearchClients(cfg.ClientsFile(), query)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"results": results,
		"query":   query,
		"count":   len(results),
	})
}

// AssignCase links an existing case to a client.
// POST /api/clients/:id/cases
func AssignCase(c echo.Context) error {
	cfg := getConfig(c)
	clientID := c.Param("id")

	req := new(struct {
		CaseID string `json:"case_id"`
	})
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.AssignCaseToClient(cfg.ClientsFile(), clientID, req.CaseID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"client_id": clientID,
		"case_id":   req.CaseID,
	})
}
