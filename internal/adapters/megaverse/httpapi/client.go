package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/bnema/megaverse-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

type API struct {
	BaseURL      string
	PolyanetPath string
	SoloonPath   string
	ComethPath   string
	GoalPath     string
}

func DefaultAPI(baseURL string) API {
	return API{
		BaseURL:      baseURL,
		PolyanetPath: "/api/polyanets",
		SoloonPath:   "/api/soloons",
		ComethPath:   "/api/comeths",
		GoalPath:     "/api/map/%s/goal",
	}
}

type Client struct {
	API            API
	CandidateID    string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.MegaverseAPI = Client{}

type placementPayload struct {
	Row         int    `json:"row"`
	Column      int    `json:"column"`
	CandidateID string `json:"candidateId"`
	Color       string `json:"color,omitempty"`
	Direction   string `json:"direction,omitempty"`
}

type goalResponse struct {
	Goal [][]string `json:"goal"`
}

func (c Client) CreateObject(ctx context.Context, obj domain.PlacementObject) error {
	if err := obj.Validate(); err != nil {
		return fmt.Errorf("create object: %w", err)
	}

	path, err := c.pathFor(obj.Kind)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}

	payload := c.basePayload(obj.Position)
	payload.Color = string(obj.Color)
	payload.Direction = string(obj.Direction)

	if err := c.send(ctx, http.MethodPost, path, payload); err != nil {
		return fmt.Errorf("create %s: %w", obj.Kind, err)
	}

	return nil
}

func (c Client) DeleteObject(ctx context.Context, kind domain.ObjectKind, pos domain.Position) error {
	path, err := c.pathFor(kind)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	if err := c.send(ctx, http.MethodDelete, path, c.basePayload(pos)); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}

	return nil
}

func (c Client) FetchGoal(ctx context.Context) (domain.GoalGrid, error) {
	if strings.TrimSpace(c.CandidateID) == "" {
		return nil, fmt.Errorf("%w: candidate id is required", domain.ErrInvalidGoal)
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, fmt.Sprintf(c.API.GoalPath, url.PathEscape(c.CandidateID)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGoal, err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create goal request: %v", domain.ErrInvalidGoal, err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request goal: %v", domain.ErrInvalidGoal, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrInvalidGoal, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload goalResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode goal response: %v", domain.ErrInvalidGoal, err)
	}
	if len(payload.Goal) == 0 {
		return nil, fmt.Errorf("%w: goal response carries no rows", domain.ErrInvalidGoal)
	}

	return domain.GoalGrid(payload.Goal), nil
}

func (c Client) send(ctx context.Context, method string, path string, payload placementPayload) error {
	if strings.TrimSpace(c.CandidateID) == "" {
		return errors.New("candidate id is required")
	}

	endpoint, err := buildAPIURL(c.API.BaseURL, path)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode placement payload: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create placement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("send placement request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	return &domain.StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
}

func (c Client) basePayload(pos domain.Position) placementPayload {
	return placementPayload{
		Row:         pos.Row,
		Column:      pos.Column,
		CandidateID: c.CandidateID,
	}
}

func (c Client) pathFor(kind domain.ObjectKind) (string, error) {
	switch kind {
	case domain.KindPolyanet:
		return c.API.PolyanetPath, nil
	case domain.KindSoloon:
		return c.API.SoloonPath, nil
	case domain.KindCometh:
		return c.API.ComethPath, nil
	default:
		return "", fmt.Errorf("unsupported object kind %q", kind)
	}
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}
