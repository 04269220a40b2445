package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/config"
	"khalti-storefront-demo/internal/model"
)

// IdentityClient talks to the hosted identity provider that owns all
// credential handling. We never see password hashes, only provider verdicts.
type IdentityClient interface {
	SignUp(ctx context.Context, email, password string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*model.User, error)
}

type identityClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	Email string `json:"email"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewIdentityClient(identityCfg *config.Identity) IdentityClient {
	return &identityClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: identityCfg.BaseURL,
		apiKey:  identityCfg.APIKey,
	}
}

func (c *identityClientImpl) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	return c.post(ctx, "/v1/accounts:signUp", email, password)
}

func (c *identityClientImpl) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	return c.post(ctx, "/v1/accounts:signInWithPassword", email, password)
}

func (c *identityClientImpl) post(ctx context.Context, path, email, password string) (*model.User, error) {
	body, err := json.Marshal(identityRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: false,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal identity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path+"?key="+c.apiKey,
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperr.AuthError{Code: apperr.AuthProviderDown, Err: err}
	}
	defer resp.Body.Close()

	var result identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &apperr.AuthError{Code: apperr.AuthProviderDown, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapProviderError(resp.StatusCode, result.Error.Message)
	}

	return &model.User{Email: result.Email}, nil
}

// mapProviderError reduces the provider's error vocabulary to the enumerated
// set the UI knows how to present.
func mapProviderError(status int, message string) error {
	code := apperr.AuthProviderDown
	switch {
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		code = apperr.AuthDuplicateAccount
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"):
		code = apperr.AuthBadCredentials
	case strings.HasPrefix(message, "TOO_MANY_ATTEMPTS_TRY_LATER"),
		status == http.StatusTooManyRequests:
		code = apperr.AuthRateLimited
	}
	return &apperr.AuthError{
		Code: code,
		Err:  fmt.Errorf("identity provider error %d: %s", status, message),
	}
}
