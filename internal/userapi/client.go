// Package userapi is the client for the external user directory the
// profile screen reads from. One operation: fetch a single user by id.
// No request body, no authentication.
package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// User is the record shape the directory returns.
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Website string  `json:"website"`
	Company Company `json:"company"`
}

// Company is the nested employer block on a User.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
}

// Client talks to one user directory endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchUser reads the user record for id. Failures come back as an error
// with a human-readable message; the caller folds them into resource state.
func (c *Client) FetchUser(ctx context.Context, id int64) (User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return User{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("fetch user %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("fetch user %d: unexpected status %s", id, resp.Status)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, fmt.Errorf("decode user %d: %w", id, err)
	}
	return u, nil
}
