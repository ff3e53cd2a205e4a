package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avolkhov/go-bookmark-keeper/internal/utils"
	"github.com/avolkhov/go-bookmark-keeper/models"
)

// HTTPClientConfig carries the knobs for the REST transport.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter returns a ServerAdapter speaking the bookmark
// server's REST API over resty.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SignUp(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/auth/signup")
	if err != nil {
		return models.Token{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp, request.Email)
}

func (h *httpServerAdapter) SignIn(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/auth/signin")
	if err != nil {
		return models.Token{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptToken(resp, request.Email)
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) EditProfile(ctx context.Context, patch models.EditUserRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("edit profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) GetBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).Get("/bookmarks")
	if err != nil {
		return nil, fmt.Errorf("get bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var bookmarks []models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmarks); err != nil {
		return nil, fmt.Errorf("decode bookmarks response: %w", err)
	}

	return bookmarks, nil
}

func (h *httpServerAdapter) GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).Get("/bookmarks/" + strconv.FormatInt(bookmarkID, 10))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) CreateBookmark(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/bookmarks")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("create bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) EditBookmark(ctx context.Context, bookmarkID int64, patch models.EditBookmarkRequest) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/bookmarks/" + strconv.FormatInt(bookmarkID, 10))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("edit bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) DeleteBookmark(ctx context.Context, bookmarkID int64) error {
	resp, err := h.authedRequest(ctx).Delete("/bookmarks/" + strconv.FormatInt(bookmarkID, 10))
	if err != nil {
		return fmt.Errorf("delete bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// adoptToken extracts the bearer token from an auth response, stores it for
// subsequent requests, and returns it with the UserID parsed from the
// subject claim. The body's access_token field is authoritative; the
// Authorization response header is a fallback.
func (h *httpServerAdapter) adoptToken(resp *resty.Response, email string) (models.Token, error) {
	var tokenResponse models.TokenResponse
	_ = json.Unmarshal(resp.Body(), &tokenResponse)

	token := tokenResponse.AccessToken
	if token == "" {
		headerToken, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.Token{}, ErrNoTokenInResponse
		}
		token = headerToken
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)

	return models.Token{SignedString: token, UserID: userID, Email: email}, nil
}
