// Package notify tells the remote timer service whose turn it is.
//
// The service is a mob.sh timer: a PUT of {"user": ..., "timer": ...} to
// <site>/<room> starts a countdown visible to everyone in the room. The
// response is not inspected and nothing is retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single notification.
const DefaultTimeout = 5 * time.Second

// ErrNotify matches any *Error.
var ErrNotify = errors.New("notify failed")

// Error reports a request that could not be delivered.
type Error struct {
	Endpoint string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("notify %s: %v", e.Endpoint, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrNotify }

// Payload is the request body understood by the timer service.
type Payload struct {
	User  string `json:"user"`
	Timer int    `json:"timer"`
}

// Notifier sends a timer start for user to endpoint.
type Notifier interface {
	Notify(ctx context.Context, endpoint, user string, minutes int) error
}

// Client is the HTTP Notifier.
type Client struct {
	HTTP *http.Client
}

// NewClient returns a Client whose requests give up after timeout.
// A non-positive timeout selects DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{HTTP: &http.Client{Timeout: timeout}}
}

// Endpoint joins site and room into the room URL.
func Endpoint(site, room string) string {
	return strings.TrimRight(site, "/") + "/" + room
}

// Notify issues one PUT to endpoint. Any transport failure, including a
// timeout, is returned as *Error. HTTP status codes are not checked.
func (c *Client) Notify(ctx context.Context, endpoint, user string, minutes int) error {
	body, err := json.Marshal(Payload{User: user, Timer: minutes})
	if err != nil {
		return &Error{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return &Error{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
