package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"law_records_go/models"
)

// LoadClients reads the clients collection file and indexes it by client ID.
// Duplicate IDs keep the last record seen; a record without an ID ends up
// under the empty-string key (legacy files contain such rows and they must
// stay visible).
func LoadClients(path string) (map[string]models.Client, error) {
	var collection models.ClientCollection
	if err := readCollection(path, &collection); err != nil {
		return nil, err
	}

	clients := make(map[string]models.Client, len(collection.Clients))
	for _, client := range collection.Clients {
		if client.Cases == nil {
			client.Cases = []string{}
		}
		clients[client.ID] = client
	}
	return clients, nil
}

// AddClient appends a new client record to the collection file. The ID must
// be "CL" followed by digits; the name must be non-empty. Duplicate IDs are
// not rejected here: the collection is append-only and LoadClients resolves
// duplicates last-write-wins.
func AddClient(path, clientID, name, contact string) error {
	if !validateRecordID(clientID, "CL") {
		return fmt.Errorf("%w: client ID must be in format 'CLXXX' where X is a digit", ErrInvalidFormat)
	}
	if name == "" {
		return fmt.Errorf("%w: client name cannot be empty", ErrInvalidFormat)
	}

	collection := loadClientsOrDefault(path)
	collection.Clients = append(collection.Clients, models.Client{
		ID:      clientID,
		Name:    name,
		Contact: contact,
		Cases:   []string{},
	})

	return writeCollection(path, &collection)
}

// SearchClients returns every client whose serialized record contains the
// search term, case-insensitively. Matches hit any field: ID, name, contact
// or linked case IDs. Source order is preserved.
func SearchClients(path, term string) ([]models.Client, error) {
	var collection models.ClientCollection
	if err := readCollection(path, &collection); err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	results := []models.Client{}
	for _, client := range collection.Clients {
		serialized, err := json.Marshal(client)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize client record: %w", err)
		}
		if strings.Contains(strings.ToLower(string(serialized)), term) {
			results = append(results, client)
		}
	}
	return results, nil
}

// AssignCaseToClient links a case to an existing client so that invoice
// generation can resolve the client for that case. Assigning an already
// linked case is a no-op.
func AssignCaseToClient(path, clientID, caseID string) error {
	if !validateRecordID(caseID, "CA") {
		return fmt.Errorf("%w: case ID must be in format 'CAXXX' where X is a digit", ErrInvalidFormat)
	}

	var collection models.ClientCollection
	if err := readCollection(path, &collection); err != nil {
		return err
	}

	for i := range collection.Clients {
		if collection.Clients[i].ID != clientID {
			continue
		}
		if collection.Clients[i].HasCase(caseID) {
			return nil
		}
		collection.Clients[i].Cases = append(collection.Clients[i].Cases, caseID)
		return writeCollection(path, &collection)
	}

	return fmt.Errorf("%w: client %s", ErrNotFound, clientID)
}

// loadClientsOrDefault reads the collection for a write-path mutation. A
// missing or corrupt file silently becomes an empty collection; corruption
// is only surfaced on explicit loads.
func loadClientsOrDefault(path string) models.ClientCollection {
	empty := models.ClientCollection{Clients: []models.Client{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}

	var collection models.ClientCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return empty
	}
	if collection.Clients == nil {
		collection.Clients = []models.Client{}
	}
	return collection
}
