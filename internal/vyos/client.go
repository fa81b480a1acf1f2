package vyos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nextgen-manager/ngm-tui/internal/network/encoding"
)

const configPath = "/api/config"

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches the router configuration from the backend.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

func NewClient(baseURL string, httpClient HTTPDoer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ConfigURL() string {
	return c.baseURL + configPath
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   any             `json:"error"`
}

// FetchConfig issues a single GET for the configuration. Every failure is returned as an
// *APIError carrying the message to show the user. It does not retry.
func (c *Client) FetchConfig(ctx context.Context) (Tree, error) {
	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, c.ConfigURL(), nil)
	if errReq != nil {
		return nil, &APIError{Kind: KindTransport, Message: msgTransport, Err: errors.Join(errReq, ErrFetchConfig)}
	}
	req.Header.Set("Accept", "application/json")

	resp, errResp := c.httpClient.Do(req)
	if errResp != nil {
		return nil, &APIError{Kind: KindTransport, Message: msgTransport, Err: errors.Join(errResp, ErrFetchConfig)}
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	body, errRead := io.ReadAll(io.LimitReader(resp.Body, encoding.MaxBodySize))
	if errRead != nil {
		return nil, &APIError{Kind: KindTransport, Message: msgTransport, Err: errors.Join(errRead, ErrFetchConfig)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, httpError(resp, body)
	}

	// A 2xx body that is not JSON is reported like a failed connection.
	payload, errDecode := encoding.UnmarshalJSON[envelope](bytes.NewReader(body))
	if errDecode != nil {
		return nil, &APIError{
			Kind:       KindTransport,
			StatusCode: resp.StatusCode,
			Message:    msgTransport,
			Err:        errors.Join(errDecode, ErrFetchConfig),
		}
	}

	tree, errData := payload.tree()
	if errData != nil {
		message := errorMessage(payload.Error)
		if message == "" {
			message = msgApplication
		}

		return nil, &APIError{
			Kind:       KindApplication,
			StatusCode: resp.StatusCode,
			Message:    message,
			Err:        errors.Join(errData, ErrFetchConfig),
		}
	}

	return tree, nil
}

func (e envelope) tree() (Tree, error) {
	if !e.Success {
		return nil, errEnvelope
	}

	raw := bytes.TrimSpace(e.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, errEnvelope
	}

	var tree Tree
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, errors.Join(err, errEnvelope)
	}

	return tree, nil
}

// httpError builds the error for a non 2xx response, preferring the message from a JSON
// error body.
func httpError(resp *http.Response, body []byte) *APIError {
	statusText := statusText(resp)

	var payload any
	message := ""
	if err := json.Unmarshal(body, &payload); err != nil {
		message = fmt.Sprintf("Server error: %d %s", resp.StatusCode, statusText)
	} else {
		// Only an object can carry an error field, any other JSON value has no message.
		if fields, ok := payload.(map[string]any); ok {
			message = errorMessage(fields["error"])
		}
		if message == "" {
			message = fmt.Sprintf("Server returned %d %s", resp.StatusCode, statusText)
		}
	}

	return &APIError{
		Kind:       KindHTTP,
		StatusCode: resp.StatusCode,
		Message:    message,
		Err:        ErrFetchConfig,
	}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}

func errorMessage(value any) string {
	switch msg := value.(type) {
	case nil:
		return ""
	case string:
		return msg
	default:
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Sprint(msg)
		}

		return string(body)
	}
}
