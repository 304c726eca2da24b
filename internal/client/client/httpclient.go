package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cybershield/cybershield-cli/internal/client/models"
	"github.com/cybershield/cybershield-cli/internal/common"
)

// TokenSource yields the current session token, "" when anonymous.
// It is a function, not a cached string, so every request re-reads the
// persistent store and picks up demotions made elsewhere.
type TokenSource func(ctx context.Context) (string, error)

type HTTPClient struct {
	endpointURL string
	http        *http.Client
	tokenSource TokenSource
}

func NewHTTPClient(endpointURL string, timeout time.Duration, ts TokenSource) *HTTPClient {
	return &HTTPClient{
		endpointURL: endpointURL,
		http:        &http.Client{Timeout: timeout},
		tokenSource: ts,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

type predictRequest struct {
	URL string `json:"url"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (string, error) {
	var resp registerResponse
	req := registerRequest{Email: email, Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/register", req, &resp, false); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	var resp loginResponse
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", req, &resp, false); err != nil {
		return "", "", err
	}
	return resp.AccessToken, models.ParseRole(resp.Role), nil
}

func (c *HTTPClient) Predict(ctx context.Context, url string, authenticated bool) (*models.ScanResult, error) {
	var resp models.ScanResult
	if err := c.do(ctx, http.MethodPost, "/predict", predictRequest{URL: url}, &resp, authenticated); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryRecord, error) {
	var resp []models.HistoryRecord
	if err := c.do(ctx, http.MethodGet, "/user/history", nil, &resp, true); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp healthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp, false); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do executes one JSON request/response round trip. A bearer token is
// attached only when authenticated is true and a token is actually present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any, authenticated bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if authenticated && c.tokenSource != nil {
		token, err := c.tokenSource(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) mapError(resp *http.Response) error {
	var er errorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &er)

	switch resp.StatusCode {
	// only 401 means a dead token; a 403 is a role denial on a session
	// that is still valid and must not trigger the demotion flow
	case http.StatusUnauthorized:
		if er.Detail != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, er.Detail)
		}
		return ErrUnauthorized
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return &APIError{StatusCode: resp.StatusCode, Detail: er.Detail}
	}
}
