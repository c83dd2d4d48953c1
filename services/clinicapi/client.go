package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arogya/models"

	"go.uber.org/zap"
)

// envelope is the backend's response shape across endpoints. Fields beyond
// the discriminator are populated per endpoint.
type envelope struct {
	Success     bool                 `json:"success"`
	Code        string               `json:"code,omitempty"`
	Error       string               `json:"error,omitempty"`
	Message     string               `json:"message,omitempty"`
	RedirectURL string               `json:"redirectUrl,omitempty"`
	Status      *models.ClinicStatus `json:"status,omitempty"`
	Multiple    bool                 `json:"multiple,omitempty"`
	Booking     *models.Booking      `json:"booking,omitempty"`
	Bookings    []models.Booking     `json:"bookings,omitempty"`
}

// HTTPClient is the production clinic backend client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. Every call runs
// under the given timeout so a hung backend surfaces as an explicit failure.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Keep the original text for diagnostics; callers get a generic error.
		c.logger.Error("clinicapi: non-JSON backend response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw))
		return nil, fmt.Errorf("backend returned an unrecognized response")
	}

	if !env.Success {
		apiErr := &APIError{Code: env.Code, Message: env.Error}
		if apiErr.Message == "" {
			apiErr.Message = env.Message
		}
		switch apiErr.Code {
		case CodeGeoRestricted, CodeClinicClosed:
		default:
			apiErr.Code = CodeGeneric
		}
		return nil, apiErr
	}

	return &env, nil
}

func (c *HTTPClient) ClinicStatus(ctx context.Context) (*models.ClinicStatus, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/clinic/status", "", nil)
	if err != nil {
		return nil, err
	}
	if env.Status == nil {
		return nil, fmt.Errorf("backend status response missing status field")
	}
	return env.Status, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/orders", "", req)
	if err != nil {
		return nil, err
	}
	if env.RedirectURL == "" {
		return nil, fmt.Errorf("backend order response missing redirect URL")
	}
	return &OrderResponse{RedirectURL: env.RedirectURL}, nil
}

func (c *HTTPClient) SearchBookings(ctx context.Context, phone, date string) (*SearchResult, error) {
	payload := map[string]string{"phone": phone, "date": date}
	env, err := c.do(ctx, http.MethodPost, "/api/bookings/search", "", payload)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Multiple: env.Multiple,
		Booking:  env.Booking,
		Bookings: env.Bookings,
	}, nil
}

func (c *HTTPClient) AdminClinicStatus(ctx context.Context, token string) (*models.ClinicStatus, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/clinic/status", token, nil)
	if err != nil {
		return nil, err
	}
	if env.Status == nil {
		return nil, fmt.Errorf("backend admin status response missing status field")
	}
	return env.Status, nil
}

func (c *HTTPClient) AdminSetClosure(ctx context.Context, token string, req ClosureRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/clinic/close", token, req)
	return err
}

func (c *HTTPClient) AdminReopen(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/admin/clinic/reopen", token, nil)
	return err
}

func (c *HTTPClient) AdminBookings(ctx context.Context, token, date string) ([]models.Booking, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/admin/bookings/"+date, token, nil)
	if err != nil {
		return nil, err
	}
	return env.Bookings, nil
}
