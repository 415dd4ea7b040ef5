// Package rest implements the domain repositories against the portal's
// HTTP backend. It normalizes transport failures into the apperror
// taxonomy and never retries or masks a failure; callers decide the
// fallback.
package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"go-jobportal-client/pkg/apperror"
)

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	return &Client{http: c}
}

// SetToken attaches the backend-issued bearer token to every request.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) R() *resty.Request {
	return c.http.R()
}

// classify maps a completed call onto the error taxonomy: network
// failure when no response arrived, typed rejection for 4xx/5xx. The
// server's message field is surfaced when the body carries one.
func classify(resp *resty.Response, err error) error {
	if err != nil {
		return apperror.Network(err)
	}
	if resp == nil {
		return apperror.Network(nil)
	}
	if resp.IsError() {
		status := resp.StatusCode()
		msg := gjson.GetBytes(resp.Body(), "message").String()
		if msg == "" {
			msg = gjson.GetBytes(resp.Body(), "error").String()
		}
		if msg == "" {
			msg = http.StatusText(status)
		}
		switch status {
		case http.StatusNotFound:
			return apperror.NotFound(msg)
		case http.StatusConflict:
			return apperror.Conflict(msg)
		}
		return apperror.Server(status, msg)
	}
	return nil
}

// decodeList parses a JSON array body. A body that is not the expected
// shape is a malformed-response error, distinct from server rejection.
func decodeList[T any](body []byte) ([]T, error) {
	var list []T
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, apperror.Decode(err)
	}
	return list, nil
}

func decodeOne[T any](body []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, apperror.Decode(err)
	}
	return &item, nil
}

// echoedID pulls the id a create response carries, tolerating both a
// bare entity and an envelope. Empty when the server did not echo one.
func echoedID(body []byte) string {
	for _, path := range []string{"id", "data.id"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			return v.String()
		}
	}
	return ""
}
