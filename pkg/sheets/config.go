package sheets

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Config represents the configuration for the Sheets client
type Config struct {
	// CredentialsJSON is the service-account key, either as a raw JSON blob
	// or base64-encoded JSON
	CredentialsJSON string

	// SpreadsheetID is the target spreadsheet identifier
	SpreadsheetID string

	// SheetName is the tab to append to (defaults to "Sheet1")
	SheetName string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CredentialsJSON) == "" {
		return ErrMissingCredentials
	}
	if c.SpreadsheetID == "" {
		return ErrMissingSpreadsheetID
	}
	return nil
}

// sheetName returns the configured tab name, falling back to "Sheet1".
func (c *Config) sheetName() string {
	if c.SheetName == "" {
		return "Sheet1"
	}
	return c.SheetName
}

// credentialBytes decodes the configured credential blob into service-account
// JSON. Deployment environments hand the key over either as raw JSON or as
// base64, and often with the private key's newlines escaped to literal "\n";
// both quirks are normalized here.
func (c *Config) credentialBytes() ([]byte, error) {
	raw := strings.TrimSpace(c.CredentialsJSON)
	if raw == "" {
		return nil, ErrMissingCredentials
	}

	if !strings.HasPrefix(raw, "{") {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: not valid JSON or base64: %v", ErrInvalidCredentials, err)
		}
		raw = strings.TrimSpace(string(decoded))
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	if key, ok := doc["private_key"].(string); ok && strings.Contains(key, `\n`) {
		doc["private_key"] = strings.ReplaceAll(key, `\n`, "\n")
		fixed, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return fixed, nil
	}

	return []byte(raw), nil
}
