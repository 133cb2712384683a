// Package client is a small Go client for the task API. It speaks the
// uniform {success, data, message, id} envelope and turns success=false
// responses into *APIError values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jaekwang-park/tasklist/internal/model"
)

// APIError is a failure reported inside a well-formed envelope, as opposed
// to a transport error.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	ID      int64           `json:"id"`
}

// List fetches the full task collection ordered by the given sort key.
func (c *Client) List(ctx context.Context, sort model.SortKey) ([]model.Task, error) {
	query := url.Values{"sort": {string(sort)}}

	env, err := c.do(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := json.Unmarshal(env.Data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	return tasks, nil
}

// Get fetches a single task by id.
func (c *Client) Get(ctx context.Context, id int64) (model.Task, error) {
	env, err := c.do(ctx, http.MethodGet, idQuery(id), nil)
	if err != nil {
		return model.Task{}, err
	}

	var task model.Task
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return model.Task{}, fmt.Errorf("failed to decode task: %w", err)
	}
	return task, nil
}

// Create adds a new task and returns the server-assigned id.
func (c *Client) Create(ctx context.Context, text, date, timeOfDay string) (int64, error) {
	body := map[string]string{
		"task_text": text,
		"task_date": date,
		"task_time": timeOfDay,
	}

	env, err := c.do(ctx, http.MethodPost, nil, body)
	if err != nil {
		return 0, err
	}
	return env.ID, nil
}

// Update applies a partial update to the task with the given id.
func (c *Client) Update(ctx context.Context, id int64, patch model.TaskPatch) error {
	_, err := c.do(ctx, http.MethodPut, idQuery(id), patch)
	return err
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, idQuery(id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method string, query url.Values, body any) (envelope, error) {
	endpoint := c.baseURL + "/tasks"
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(buf)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return envelope{}, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		return envelope{}, &APIError{Message: message}
	}

	return env, nil
}

func idQuery(id int64) url.Values {
	return url.Values{"id": {strconv.FormatInt(id, 10)}}
}
