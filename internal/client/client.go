// Package client talks to the course API the way the authoring forms do:
// validate locally, send one request per action, then report a notice.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/yigit/coursecraft/internal/app/models/dto"
)

// ErrRequestInFlight is returned when the same action is already running
var ErrRequestInFlight = errors.New("request already in flight")

// Options configures a Client
type Options struct {
	BaseURL string // e.g. http://localhost:8080/api
	Token   string
	Timeout time.Duration
	Hooks   Hooks
}

// Hooks receive the side effects of an action. Nil hooks are skipped.
type Hooks struct {
	Notify   func(Notice)
	Refresh  func()
	Navigate func(path string)
}

// Client is a course API client
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	hooks    Hooks

	mu       sync.Mutex
	inFlight map[string]bool
}

// New creates a Client
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	if opts.Token != "" {
		httpClient.SetAuthToken(opts.Token)
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Client{
		http:     httpClient,
		validate: v,
		hooks:    opts.Hooks,
		inFlight: make(map[string]bool),
	}
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Code    dto.ErrorCode
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// ValidationError is a form value rejected before any request is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func newAPIError(resp *resty.Response, env *envelope) *APIError {
	apiErr := &APIError{Status: resp.StatusCode()}
	if env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}

// begin marks key as running. The returned func clears it.
func (c *Client) begin(key string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[key] {
		return nil, ErrRequestInFlight
	}
	c.inFlight[key] = true
	return func() {
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	}, nil
}

// InFlight reports whether the action identified by key is running
func (c *Client) InFlight(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight[key]
}

func (c *Client) check(form interface{}) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Message: dto.FormatFieldError(verrs[0])}
	}
	return err
}

// do sends one request and decodes the data of the envelope into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var env envelope
	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(resp, &env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) notify(n Notice) {
	if c.hooks.Notify != nil {
		c.hooks.Notify(n)
	}
}

func (c *Client) refresh() {
	if c.hooks.Refresh != nil {
		c.hooks.Refresh()
	}
}

func (c *Client) navigate(path string) {
	if c.hooks.Navigate != nil {
		c.hooks.Navigate(path)
	}
}

// fail reports the generic notice. The error is returned unchanged.
func (c *Client) fail(err error) error {
	c.notify(ErrorNotice(MsgSomethingWentWrong))
	return err
}

