// Package client is the Go sync client for the notesync API. Each method
// performs one HTTP call and, on success, merges the server's response into
// an in-memory cache plus an on-disk mirror used as the offline fallback.
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

	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response, carrying the server's error message when
// one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Options configures a Client.
type Options struct {
	// BaseURL is the server root, e.g. "http://localhost:3000".
	BaseURL string
	// StateDir is where the offline mirror files live.
	StateDir string
	// Timeout bounds each HTTP call. Defaults to 15s.
	Timeout time.Duration
	// Logger is optional; a no-op logger is used when unset.
	Logger *zerolog.Logger
}

// Client talks to the notesync API and keeps a local cache in sync.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
	mirror  *Mirror
	logger  zerolog.Logger
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if opts.StateDir == "" {
		return nil, fmt.Errorf("state directory is required")
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	lgr := zerolog.Nop()
	if opts.Logger != nil {
		lgr = *opts.Logger
	}

	mirror, err := NewMirror(opts.StateDir)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   &Cache{},
		mirror:  mirror,
		logger:  lgr,
	}, nil
}

// Cache exposes the client's in-memory document copy.
func (c *Client) Cache() *Cache {
	return c.cache
}

// LoadRemoteData replaces the local cache with the server's full document.
// If the server cannot be reached it falls back to the last mirrored
// snapshot; fromMirror reports which copy the caller got.
func (c *Client) LoadRemoteData(ctx context.Context) (data Data, fromMirror bool, err error) {
	if err = c.doJSON(ctx, http.MethodGet, "/api/data", nil, &data); err != nil {
		if _, ok := err.(*APIError); ok {
			return Data{}, false, err
		}

		c.logger.Warn().Err(err).Msg("Server unreachable, falling back to mirrored data")
		mirrored, mirrorErr := c.mirror.LoadData()
		if mirrorErr != nil {
			return Data{}, false, fmt.Errorf("failed to load remote data and no usable mirror: %w", err)
		}
		c.cache.ReplaceAll(mirrored)
		return mirrored, true, nil
	}

	c.cache.ReplaceAll(data)
	c.saveDataMirror()
	return data, false, nil
}

// CreateCourse creates a course and merges it into the cache.
func (c *Client) CreateCourse(ctx context.Context, params CreateCourseParams) (Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodPost, "/api/courses", params, &course); err != nil {
		return Course{}, err
	}
	c.cache.UpsertCourse(course)
	c.saveDataMirror()
	return course, nil
}

// GetCourse fetches a single course and merges it into the cache.
func (c *Client) GetCourse(ctx context.Context, id string) (Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses/"+id, nil, &course); err != nil {
		return Course{}, err
	}
	c.cache.UpsertCourse(course)
	c.saveDataMirror()
	return course, nil
}

// UpdateCourse applies a partial course update and merges the result into
// the cache.
func (c *Client) UpdateCourse(ctx context.Context, id string, params UpdateCourseParams) (Course, error) {
	var course Course
	if err := c.doJSON(ctx, http.MethodPut, "/api/courses/"+id, params, &course); err != nil {
		return Course{}, err
	}
	c.cache.UpsertCourse(course)
	c.saveDataMirror()
	return course, nil
}

// CreateNote creates a community note and merges it into the cache.
func (c *Client) CreateNote(ctx context.Context, params CreateNoteParams) (CommunityNote, error) {
	var note CommunityNote
	if err := c.doJSON(ctx, http.MethodPost, "/api/notes", params, &note); err != nil {
		return CommunityNote{}, err
	}
	c.cache.UpsertNote(note)
	c.saveDataMirror()
	return note, nil
}

// UpdateNote edits a note and merges the result into the cache.
func (c *Client) UpdateNote(ctx context.Context, id string, params UpdateNoteParams) (CommunityNote, error) {
	var note CommunityNote
	if err := c.doJSON(ctx, http.MethodPut, "/api/notes/"+id, params, &note); err != nil {
		return CommunityNote{}, err
	}
	c.cache.UpsertNote(note)
	c.saveDataMirror()
	return note, nil
}

// DeleteNote removes a note and drops it from the cache.
func (c *Client) DeleteNote(ctx context.Context, id, authorID string, bypass bool) error {
	body := map[string]any{"authorId": authorID}
	if bypass {
		body["bypass"] = true
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/api/notes/"+id, body, nil); err != nil {
		return err
	}
	c.cache.RemoveNote(id)
	c.saveDataMirror()
	return nil
}

// RateNote submits a rating and applies the returned aggregate to the cache.
func (c *Client) RateNote(ctx context.Context, id, userID string, rating int) (RatingSummary, error) {
	body := map[string]any{"userId": userID, "rating": rating}
	var summary RatingSummary
	if err := c.doJSON(ctx, http.MethodPost, "/api/notes/"+id+"/rate", body, &summary); err != nil {
		return RatingSummary{}, err
	}
	c.cache.ApplyRating(id, summary)
	c.saveDataMirror()
	return summary, nil
}

// Signup registers an account and mirrors it as the current user.
func (c *Client) Signup(ctx context.Context, email, password, name string) (User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", body, &user); err != nil {
		return User{}, err
	}
	c.saveUserMirror(user)
	return user, nil
}

// Login checks credentials and mirrors the result as the current user.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &user); err != nil {
		return User{}, err
	}
	c.saveUserMirror(user)
	return user, nil
}

// CurrentUser returns the mirrored current user, if any.
func (c *Client) CurrentUser() (User, error) {
	return c.mirror.LoadUser()
}

// Logout clears the current-user mirror. Purely local, the server keeps no
// session state.
func (c *Client) Logout() error {
	return c.mirror.ClearUser()
}

// doJSON performs one HTTP round trip. Non-2xx responses become an APIError
// with the server's message when the body decodes as {"error": "..."}.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			message = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Mirror writes are best-effort; a failed write never fails the API call.
func (c *Client) saveDataMirror() {
	if err := c.mirror.SaveData(c.cache.Data()); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to write data mirror")
	}
}

func (c *Client) saveUserMirror(u User) {
	if err := c.mirror.SaveUser(u); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to write user mirror")
	}
}
