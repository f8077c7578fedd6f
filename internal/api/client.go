package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ghaggin/hbnb-web/internal/config"
	"github.com/ghaggin/hbnb-web/internal/model"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	loginPath   = "/api/v1/auth/login"
	placesPath  = "/api/v1/places/"
	reviewsPath = "/api/v1/reviews/"

	maxBodyBytes = 1 << 20
)

// Client talks to the hbnb api on behalf of the browser. It holds no
// credential of its own, every call takes the caller's.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     *zap.Logger
}

type Params struct {
	fx.In

	Config *config.Config
	Log    *zap.Logger
}

func New(p Params) (*Client, error) {
	return NewClient(p.Config.API.BaseURL, p.Config.API.Timeout, p.Log)
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		timeout: timeout,
		http:    &http.Client{},
		log:     log.Named("api"),
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for an access token. A success response
// without a token is an error.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, loginPath, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, ErrMissingToken)
	}

	return &resp, nil
}

// ListPlaces fetches every listing. Elements that fail to decode are
// logged and skipped so one bad listing does not hide the others.
func (c *Client) ListPlaces(ctx context.Context, token string) ([]model.Listing, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, http.MethodGet, placesPath, token, nil, &raw); err != nil {
		return nil, err
	}

	listings := make([]model.Listing, 0, len(raw))
	for i, b := range raw {
		var l model.Listing
		if err := json.Unmarshal(b, &l); err != nil {
			c.log.Warn("skipping listing", zap.Int("index", i), zap.Error(err))
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// GetPlace fetches one listing. token may be empty, the detail endpoint is
// readable without one.
func (c *Client) GetPlace(ctx context.Context, id, token string) (*model.Listing, error) {
	var listing model.Listing
	if err := c.do(ctx, http.MethodGet, placesPath+url.PathEscape(id), token, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *Client) CreateReview(ctx context.Context, token string, review model.NewReview) error {
	return c.do(ctx, http.MethodPost, reviewsPath, token, review, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: reading body of %s %s: %w", ErrUnreachable, method, path, err)
	}

	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %w", ErrBadResponse, method, path, err)
	}

	return nil
}
