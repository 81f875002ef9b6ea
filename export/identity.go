package export

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Identity is a resolved reporting user.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Resolver maps a username to its reporting identity. Resolution failure
// aborts an export before any scan work begins.
type Resolver interface {
	Resolve(ctx context.Context, username string) (Identity, error)
}

// StaticResolver returns a fixed identity from configuration, ignoring the
// username.
type StaticResolver struct {
	ID          string
	DisplayName string
}

func (r StaticResolver) Resolve(ctx context.Context, username string) (Identity, error) {
	if r.ID == "" {
		return Identity{}, fmt.Errorf("user id is not configured")
	}
	return Identity{ID: r.ID, DisplayName: r.DisplayName}, nil
}

// HTTPResolver queries an identity service: GET <base>/users/<username>
// returning {"id": ..., "displayName": ...}.
type HTTPResolver struct {
	BaseURL string

	// Client overrides the default HTTP client. Nil uses a 10s-timeout client.
	Client *http.Client
}

func (r *HTTPResolver) Resolve(ctx context.Context, username string) (Identity, error) {
	if username == "" {
		return Identity{}, fmt.Errorf("username is required")
	}

	endpoint := r.BaseURL + "/users/" + url.PathEscape(username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build identity request: %w", err)
	}

	resp, err := r.client().Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("resolve %s: %w", username, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("resolve %s: unexpected status %s", username, resp.Status)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return Identity{}, fmt.Errorf("decode identity response: %w", err)
	}
	if id.ID == "" {
		return Identity{}, fmt.Errorf("identity service returned no id for %s", username)
	}
	return id, nil
}

func (r *HTTPResolver) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}
