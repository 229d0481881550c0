package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geniesugar/geniesugar/internal/config"
	"github.com/redis/go-redis/v9"
)

// Tokens is the OAuth token pair obtained from Dexcom for one user.
type Tokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// tokenTTL bounds how long a connection record is kept around after the
// access token itself has expired.
const tokenTTL = 30 * 24 * time.Hour

// TokenStore persists Dexcom tokens per user in Redis so connections survive
// process restarts and are shared across server instances.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func tokenKey(userID string) string {
	return fmt.Sprintf("dexcom:tokens:%s", userID)
}

func (s *TokenStore) Save(ctx context.Context, userID string, tokens Tokens) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	if err := s.client.Set(ctx, tokenKey(userID), data, tokenTTL).Err(); err != nil {
		return fmt.Errorf("failed to store tokens: %w", err)
	}
	return nil
}

// Get returns the stored tokens or nil when the user is not connected.
func (s *TokenStore) Get(ctx context.Context, userID string) (*Tokens, error) {
	result := s.client.Get(ctx, tokenKey(userID))
	if result.Err() == redis.Nil {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("failed to read tokens: %w", result.Err())
	}
	var tokens Tokens
	if err := json.Unmarshal([]byte(result.Val()), &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tokens: %w", err)
	}
	return &tokens, nil
}

func (s *TokenStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, tokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}
	return nil
}

// EGV is one estimated glucose value from the Dexcom API.
type EGV struct {
	SystemTime  string `json:"systemTime"`
	DisplayTime string `json:"displayTime"`
	Value       int    `json:"value"`
}

// EGVResponse is the Dexcom /egvs payload.
type EGVResponse struct {
	Egvs []EGV `json:"egvs"`
}

// Client talks to the Dexcom (sandbox) API.
type Client struct {
	cfg   config.DexcomConfig
	http  *http.Client
	store *TokenStore
}

func NewClient(cfg config.DexcomConfig, store *TokenStore) *Client {
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: 15 * time.Second},
		store: store,
	}
}

// Configured reports whether Dexcom credentials are present.
func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != ""
}

// AuthURL builds the OAuth authorization URL. The state carries the user ID
// so the callback can attribute the tokens.
func (c *Client) AuthURL(redirectURI, state string) string {
	return fmt.Sprintf("%s/v2/oauth2/login?client_id=%s&redirect_uri=%s&response_type=code&scope=offline_access&state=%s",
		c.cfg.BaseURL, c.cfg.ClientID, url.QueryEscape(redirectURI), state)
}

// Exchange trades an authorization code for tokens and stores them for the user.
func (c *Client) Exchange(ctx context.Context, userID, code, redirectURI string) error {
	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURI},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v2/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}

	return c.store.Save(ctx, userID, Tokens{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
	})
}

// Connected reports whether the user has a non-expired token.
func (c *Client) Connected(ctx context.Context, userID string) (bool, error) {
	tokens, err := c.store.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return tokens != nil && tokens.ExpiresAt.After(time.Now()), nil
}

// FetchReadings pulls the last 24 hours of estimated glucose values.
func (c *Client) FetchReadings(ctx context.Context, userID string) (*EGVResponse, error) {
	tokens, err := c.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tokens == nil || tokens.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("dexcom not connected or token expired")
	}

	end := time.Now()
	start := end.Add(-24 * time.Hour)
	endpoint := fmt.Sprintf("%s/v2/users/self/egvs?startDate=%s&endDate=%s",
		c.cfg.BaseURL, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build readings request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch readings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("readings request failed with status %d: %s", resp.StatusCode, body)
	}

	var payload EGVResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode readings: %w", err)
	}
	return &payload, nil
}

// Disconnect drops the stored tokens.
func (c *Client) Disconnect(ctx context.Context, userID string) error {
	return c.store.Delete(ctx, userID)
}
