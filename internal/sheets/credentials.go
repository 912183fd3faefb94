package sheets

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"story-wall/internal/config"
)

// serviceAccountKey mirrors the fields of a Google service account key file
// that the JWT flow needs. token_uri is fixed by Google and not configurable.
type serviceAccountKey struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`
}

const googleTokenURI = "https://oauth2.googleapis.com/token"

// Credentials is the resolved service account source: either a JSON document
// assembled from discrete env values, or a path to a key file on disk.
// Exactly one of the two fields is set.
type Credentials struct {
	json []byte
	file string
}

// ResolveCredentials picks the credential source once at startup. The env
// variant is used only when every discrete field is present and non-empty;
// otherwise the key file path is returned as-is. A missing or unreadable file
// is not an error here: it surfaces on the first remote call.
func ResolveCredentials(cfg *config.Config) Credentials {
	key, ok := keyFromEnv(cfg)
	if !ok {
		return Credentials{file: cfg.CredentialsFilePath}
	}
	b, err := json.Marshal(key)
	if err != nil {
		// A map of strings cannot fail to marshal; fall back anyway.
		return Credentials{file: cfg.CredentialsFilePath}
	}
	return Credentials{json: b}
}

// FromEnv reports whether the discrete-env variant was selected.
func (c Credentials) FromEnv() bool { return c.json != nil }

// load returns the service account key JSON, reading the key file if the
// discrete-env variant was not selected.
func (c Credentials) load() ([]byte, error) {
	if c.json != nil {
		return c.json, nil
	}
	b, err := os.ReadFile(c.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", c.file, err)
	}
	return b, nil
}

func keyFromEnv(cfg *config.Config) (serviceAccountKey, bool) {
	key := serviceAccountKey{
		Type:         cfg.SAType,
		ProjectID:    cfg.SAProjectID,
		PrivateKeyID: cfg.SAPrivateKeyID,
		// PEM blocks arrive with literal \n when set through an env file.
		PrivateKey:  strings.ReplaceAll(cfg.SAPrivateKey, `\n`, "\n"),
		ClientEmail: cfg.SAClientEmail,
		ClientID:    cfg.SAClientID,
		TokenURI:    googleTokenURI,
	}
	if key.Type == "" || key.ProjectID == "" || key.PrivateKeyID == "" ||
		key.PrivateKey == "" || key.ClientEmail == "" || key.ClientID == "" {
		return serviceAccountKey{}, false
	}
	return key, true
}
