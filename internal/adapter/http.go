package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-web-server/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	// resty keeps cookies in its own jar, which carries the identity cookie
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) Login(ctx context.Context, login, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: login, Password: password}).
		Post("/api/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Logoff(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LogoffRequest{Logoff: true}).
		Post("/api/logoff")
	if err != nil {
		return fmt.Errorf("logoff request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) WhoAmI(ctx context.Context) (models.WhoAmIResponse, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/whoami")
	if err != nil {
		return models.WhoAmIResponse{}, fmt.Errorf("whoami request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WhoAmIResponse{}, err
	}

	var who models.WhoAmIResponse
	if err = json.Unmarshal(resp.Body(), &who); err != nil {
		return models.WhoAmIResponse{}, fmt.Errorf("decode whoami response: %w", err)
	}
	return who, nil
}

func (h *httpServerAdapter) Call(ctx context.Context, method string, params any, result any) error {
	req := models.RPCRequest{ID: time.Now().UnixNano(), Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("encode %s params: %w", method, err)
		}
		req.Params = raw
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/rpc")
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if err = json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}
