package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/config"
	"github.com/edtrack/edtrack-go/internal/redact"
	"github.com/google/uuid"
)

// TokenSource supplies the bearer credential attached to every request.
// Implementations that cannot produce a token return an error, which the
// client surfaces as an authorization failure without a network call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the sole component permitted to perform network I/O for
// domain resources. It issues requests against a configured endpoint and
// translates every outcome into a typed value or a classified error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	messages   apperr.Messages
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource installs the credential source for outgoing requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithMessages installs the localized message table used to resolve
// server error codes.
func WithMessages(m apperr.Messages) Option {
	return func(c *Client) { c.messages = m }
}

// WithLogger installs a structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// New creates a Client for the configured API endpoint.
func New(cfg config.APIConfig, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apperr.New(apperr.KindClient, "API base URL cannot be empty", nil)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "rest_client"))

	return c, nil
}

// HandleError converts a raw failure into a classified error with the
// request context attached. Domain services call it to keep diagnostics
// traceable without repeating boilerplate; an already classified error
// only gains method and path.
func (c *Client) HandleError(method, path string, err error) *apperr.Error {
	appErr := apperr.Classify(err)
	if appErr.Method == "" {
		appErr = appErr.WithRequest(method, path)
	}
	return appErr
}

// requestOptions holds per-request settings.
type requestOptions struct {
	query Params
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithQuery attaches query parameters to the request. Keys with nil,
// empty-string, or empty-slice values are omitted; slices serialize as
// repeated keys.
func WithQuery(p Params) RequestOption {
	return func(o *requestOptions) { o.query = p }
}

// Get issues a read for path and decodes the response into T. Reads have
// no observable side effects on the server.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post issues a create and decodes the response into T. body may be a
// structured value (sent as JSON) or an *UploadForm (sent as multipart).
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put issues an update and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Delete issues a delete and decodes the response into T. body is
// optional; several backend endpoints take a bulk-delete id array in the
// request body rather than the URL. A repeated delete may legitimately
// fail not-found; the client reports it rather than swallowing it.
func Delete[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, body, opts...)
}

// envelope is the optional response wrapper some endpoints use. Bare
// bodies fail to decode into it and are returned as-is.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// errorBody is the optional JSON body carried by non-2xx responses.
type errorBody struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Errors  []apperr.FieldError `json:"errors"`
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (T, error) {
	var zero T

	var reqOpts requestOptions
	for _, opt := range opts {
		opt(&reqOpts)
	}

	reqBody, contentType, err := encodeBody(body)
	if err != nil {
		return zero, c.HandleError(method, path, err)
	}

	url := c.baseURL + path
	if q := reqOpts.query.Encode(); q != "" {
		url += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return zero, c.HandleError(method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return zero, c.HandleError(method, path,
				apperr.New(apperr.KindAuthorization, "Your session has expired. Please sign in again.", err))
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.DebugContext(ctx, "request started",
		slog.String("method", method),
		slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors echo the full URL back; scrub credentials
		// before the text reaches the log.
		c.logger.DebugContext(ctx, "transport error",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", redact.Error(err)))
		return zero, c.HandleError(method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, c.HandleError(method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(respBody, &eb)

		appErr := apperr.FromResponse(resp.StatusCode, eb.Code, eb.Message, eb.Errors, c.messages).
			WithRequest(method, path)

		c.logger.DebugContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(appErr.Kind)))

		return zero, appErr
	}

	value, err := decodeBody[T](respBody)
	if err != nil {
		return zero, c.HandleError(method, path, err)
	}
	return value, nil
}

// encodeBody prepares the request body. Structured values are sent as
// JSON; *UploadForm payloads are sent as multipart form data; a nil body
// sends nothing.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *UploadForm:
		reader, contentType, err := b.Encode()
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode multipart form: %w", err)
		}
		return reader, contentType, nil
	default:
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return bytes.NewReader(buf), "application/json", nil
	}
}

// decodeBody unwraps the {success, message, data} envelope when present,
// otherwise decodes the bare body. Empty bodies yield the zero value.
func decodeBody[T any](body []byte) (T, error) {
	var value T

	if len(bytes.TrimSpace(body)) == 0 {
		return value, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && (env.Success != nil || env.Data != nil) {
		if env.Data == nil {
			return value, nil
		}
		if err := json.Unmarshal(env.Data, &value); err != nil {
			return value, fmt.Errorf("failed to decode response data: %w", err)
		}
		return value, nil
	}

	if err := json.Unmarshal(body, &value); err != nil {
		return value, fmt.Errorf("failed to decode response body: %w", err)
	}
	return value, nil
}
