// Package client is a typed client for the circles API. Reads are cached by
// endpoint path; a successful mutation invalidates the list entry and the
// entity it touched, mirroring how the web client keys its queries.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Group struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Leader      string  `json:"leader"`
	Schedule    string  `json:"schedule"`
	Location    string  `json:"location"`
	Capacity    *int    `json:"capacity,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatorID   *int64  `json:"creatorId,omitempty"`
}

type JoinRequest struct {
	ID      int64  `json:"id"`
	GroupID int64  `json:"groupId"`
	UserID  int64  `json:"userId"`
	Email   string `json:"email"`
	Status  string `json:"status"`
}

type GroupInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Leader      string  `json:"leader"`
	Schedule    string  `json:"schedule"`
	Location    string  `json:"location"`
	Capacity    *int    `json:"capacity,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type GroupUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Leader      *string `json:"leader,omitempty"`
	Schedule    *string `json:"schedule,omitempty"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// APIError carries the server's status and message; Field is set for
// validation failures so callers can surface the message on the right input.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status: %d, message: %v", e.Status, e.Message)
}

func IsNotFound(err error) bool {
	e, ok := err.(*APIError)
	return ok && e.Status == http.StatusNotFound
}

type Client struct {
	base  string
	hc    *http.Client
	token string

	mu    sync.Mutex
	cache map[string][]byte
}

func New(base string) *Client {
	return &Client{
		base:  base,
		hc:    http.DefaultClient,
		cache: make(map[string][]byte),
	}
}

// SetToken attaches the session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

const groupsPath = "/api/groups"

func groupPath(id int64) string {
	return fmt.Sprintf("%s/%d", groupsPath, id)
}

func joinRequestsPath(id int64) string {
	return groupPath(id) + "/join-requests"
}

func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	var resp []Group
	if err := c.getCached(ctx, groupsPath, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetGroup(ctx context.Context, id int64) (*Group, error) {
	var resp Group
	if err := c.getCached(ctx, groupPath(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateGroup(ctx context.Context, input GroupInput) (*Group, error) {
	var resp Group
	if err := c.do(ctx, http.MethodPost, groupsPath, input, &resp); err != nil {
		return nil, err
	}
	c.invalidate(groupsPath, groupPath(resp.ID))
	return &resp, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id int64, update GroupUpdate) (*Group, error) {
	var resp Group
	if err := c.do(ctx, http.MethodPut, groupPath(id), update, &resp); err != nil {
		return nil, err
	}
	c.invalidate(groupsPath, groupPath(id))
	return &resp, nil
}

func (c *Client) DeleteGroup(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, groupPath(id), nil, nil); err != nil {
		return err
	}
	c.invalidate(groupsPath, groupPath(id))
	return nil
}

func (c *Client) CreateJoinRequest(ctx context.Context, groupID int64, email string) (*JoinRequest, error) {
	var resp JoinRequest
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, joinRequestsPath(groupID), body, &resp); err != nil {
		return nil, err
	}
	c.invalidate(joinRequestsPath(groupID))
	return &resp, nil
}

func (c *Client) ListJoinRequests(ctx context.Context, groupID int64) ([]JoinRequest, error) {
	var resp []JoinRequest
	if err := c.getCached(ctx, joinRequestsPath(groupID), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) getCached(ctx context.Context, path string, out any) error {
	c.mu.Lock()
	cached, ok := c.cache[path]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(cached, out)
	}
	raw, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.cache[path] = raw
	c.mu.Unlock()
	return json.Unmarshal(raw, out)
}

func (c *Client) invalidate(paths ...string) {
	c.mu.Lock()
	for _, p := range paths {
		delete(c.cache, p)
	}
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	raw, err := c.doRaw(ctx, method, path, in)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) doRaw(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("token", c.token)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		json.Unmarshal(raw, apiErr)
		return nil, apiErr
	}
	return raw, nil
}
