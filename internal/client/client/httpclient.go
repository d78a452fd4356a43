package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdemo/internal/client/models"
	"github.com/dmitrijs2005/gophdemo/internal/common"
)

// TokenSource supplies the bearer token for each request. An empty token
// sends no Authorization header.
type TokenSource interface {
	Token() string
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient returns a client for the server at baseURL. A nil hc means
// http.DefaultClient; a nil tokens sends no token.
func NewHTTPClient(baseURL string, hc *http.Client, tokens TokenSource) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc, tokens: tokens}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginResponse struct {
	envelope
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

type processResponse struct {
	envelope
	Action string `json:"action"`
	Data   struct {
		Input   json.RawMessage `json:"input"`
		Result  json.RawMessage `json:"result"`
		Message string          `json:"message"`
	} `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *HTTPClient) Status(ctx context.Context) (*models.ServerStatus, error) {
	var out models.ServerStatus
	if err := c.do(ctx, http.MethodGet, "/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	req := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	return &models.LoginResult{Message: resp.Message, User: resp.User, Token: resp.Token}, nil
}

func (c *HTTPClient) Users(ctx context.Context) (*models.UserList, error) {
	var out models.UserList
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ProcessData(ctx context.Context, action, data string) (*models.ProcessResult, error) {
	req := map[string]string{"action": action, "data": data}

	var resp processResponse
	if err := c.do(ctx, http.MethodPost, "/api/process-data", req, &resp); err != nil {
		return nil, err
	}
	return &models.ProcessResult{
		Action:    resp.Action,
		Input:     resp.Data.Input,
		Result:    resp.Data.Result,
		Message:   resp.Data.Message,
		Timestamp: resp.Timestamp,
	}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func (c *HTTPClient) mapError(status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)

	apiErr := &APIError{StatusCode: status, Message: env.Message}
	if status == http.StatusUnauthorized {
		apiErr.Err = ErrUnauthorized
	}
	return apiErr
}
