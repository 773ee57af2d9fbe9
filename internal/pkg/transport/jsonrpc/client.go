// Package jsonrpc provides a generic JSON-RPC 2.0 client implementation over HTTP.
// It is suitable for interacting with any JSON-RPC-compatible service, such as
// blockchain nodes. Retries, if any, belong to the injected HTTP client.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates an HTTP response whose body is not a JSON-RPC envelope.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrEmptyResult indicates a successful envelope without a result member.
	ErrEmptyResult = errors.New("empty result")
)

// RPCError is the error object of a JSON-RPC 2.0 response.
// It matches ErrProviderReturnedError through errors.Is.
type RPCError struct {
	Code    int             `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
	Message string          `json:"message"` // Human-readable error message
	Data    json.RawMessage `json:"data"`    // Optional provider specific details
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *RPCError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *RPCError       `json:"error"`
	Result  json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns the response error object, or nil.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string       // The URL of the remote JSON-RPC server
	httpClient       *http.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string. A nil params list is sent
// as an empty array.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	if len(data.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, method)
	}

	return data.Result, nil
}

// Call is a typed variant of Fetch that decodes the result into T.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", method, err)
	}

	return out, nil
}

// NewClient constructs and returns a Client that will send JSON-RPC requests
// to the specified provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
