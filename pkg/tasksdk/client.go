package tasksdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// DefaultAuthScheme matches the service's default Authorization scheme.
const DefaultAuthScheme = "JWT"

// Client talks to the unauthenticated part of the tasks API and creates
// Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// AuthScheme is the prefix sent before the token in the Authorization
	// header. It must match the server's configured scheme.
	AuthScheme string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		AuthScheme: DefaultAuthScheme,
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/users", req, "")
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Token exchanges credentials for a signed token.
func (c *Client) Token(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/token", TokenRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Login exchanges credentials and returns a Session using the new token.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	tok, err := c.Token(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// NewSession wraps an existing token.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
