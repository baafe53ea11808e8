// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Address is a nested bean used by the fixtures.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// Order is a bean stored in a sequence of a Customer.
type Order struct {
	ID    int      `json:"id"`
	Items []string `json:"items"`
	Total float64  `json:"total"`
}

// Customer is a bean covering nested beans, sequences, mappings and a
// getter-only property.
type Customer struct {
	Name    string            `json:"name"`
	Email   string            `json:"email,omitempty"`
	Address *Address          `json:"address"`
	Orders  []Order           `json:"orders"`
	Tags    map[string]string `json:"tags"`

	nickname string
}

// GetNickname exposes the unexported nickname as a "nickname" property.
func (c Customer) GetNickname() string {
	return c.nickname
}

// NewCustomer returns a fully populated Customer.
func NewCustomer() *Customer {
	return &Customer{
		Name:  "Ada",
		Email: "ada@example.com",
		Address: &Address{
			Street: "1 Analytical Way",
			City:   "London",
		},
		Orders: []Order{
			{ID: 1, Items: []string{"pen", "ink"}, Total: 12.5},
			{ID: 2, Items: []string{"paper"}, Total: 3},
		},
		Tags:     map[string]string{"tier": "gold"},
		nickname: "countess",
	}
}

// NewCustomerDocument returns the generic-document form of NewCustomer, as a
// JSON decoder would produce it.
func NewCustomerDocument() map[string]any {
	return map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"address": map[string]any{
			"street": "1 Analytical Way",
			"city":   "London",
		},
		"orders": []any{
			map[string]any{"id": 1, "items": []any{"pen", "ink"}, "total": 12.5},
			map[string]any{"id": 2, "items": []any{"paper"}, "total": 3},
		},
		"tags": map[string]any{"tier": "gold"},
	}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "doc.yaml", data)
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "doc.json", data)
}

// WriteTempFile writes raw data to name inside a fresh temporary directory.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
