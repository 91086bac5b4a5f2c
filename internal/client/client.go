package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty string means no Authorization header is sent.  The session
// package provides the production implementation.
type TokenSource interface {
	Token() string
}

// Client is the typed request/response boundary to the remote booking
// service.  It holds no domain logic and no caches; every call reflects
// exactly one HTTP round trip.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource

	// onUnauthenticated is invoked whenever the remote service answers
	// 401, so the session can clear itself (implicit logout).  May be nil.
	onUnauthenticated func()
}

// New constructs a Client for the given base URL, e.g.
// "http://localhost:8080/api/v1".  A trailing slash is trimmed.  The
// tokens source may be nil for unauthenticated use.
func New(base string, tokens TokenSource, onUnauthenticated func()) *Client {
	return &Client{
		base:              strings.TrimRight(base, "/"),
		http:              &http.Client{Timeout: 30 * time.Second},
		tokens:            tokens,
		onUnauthenticated: onUnauthenticated,
	}
}

// envelope matches the optional wrapping the service applies to success
// bodies.  When Data is present the payload of interest lives under it.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorBody matches both observed error shapes: a nested
// {"error":{"message":...}} and a flat {"message":...}.
type errorBody struct {
	Err struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

// do performs one JSON round trip.  body is marshalled when non-nil; the
// response value is decoded into out when out is non-nil.  A 204 (or an
// empty body) is treated as an empty success.  Non-2xx responses yield a
// typed *Error carrying the extracted remote message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return newTransportError(err)
		}
		payload = bytes.NewReader(bs)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return newTransportError(err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Err.Message
		if msg == "" {
			msg = eb.Message
		}
		if res.StatusCode == http.StatusUnauthorized && c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return newStatusError(res.StatusCode, msg)
	}

	if out == nil || res.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	// The service wraps some bodies in {data, timeStamp}; unwrap when the
	// data key is present, otherwise decode the body as-is.
	doc := raw
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
			doc = env.Data
		}
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return &Error{kind: ErrRemoteUnavailable, Status: res.StatusCode, Message: "malformed response body: " + err.Error()}
	}
	return nil
}

// get is shorthand for a GET round trip.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}
