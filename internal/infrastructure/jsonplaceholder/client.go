package jsonplaceholder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oksasatya/go-directory-portal/internal/domain/entity"
	"github.com/oksasatya/go-directory-portal/internal/domain/repository"
)

// Client reads users and posts from a JSONPlaceholder-compatible REST API.
type Client struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: "directory-portal/1.0",
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.Code)
}

func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User returns repository.ErrNotFound when the API answers 404.
func (c *Client) User(ctx context.Context, id int) (*entity.User, error) {
	var u entity.User
	if err := c.get(ctx, "/users/"+strconv.Itoa(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Posts(ctx context.Context, userID *int) ([]entity.Post, error) {
	var q url.Values
	if userID != nil {
		q = url.Values{"userId": {strconv.Itoa(*userID)}}
	}
	var posts []entity.Post
	if err := c.get(ctx, "/posts", q, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("GET %s: %w", path, repository.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: path, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
