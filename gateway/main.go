package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/subquery/cli/configs"
	"github.com/subquery/cli/constants"
	"github.com/subquery/cli/entity"
	cerrors "github.com/subquery/cli/errors"
	"github.com/subquery/cli/uuid"
	"go.uber.org/zap"
)

const (
	CLI_SOURCE_HEADER = "cli"
)

// CredentialSource yields the signed-in user whose token authorizes calls.
type CredentialSource interface {
	Restore() (*entity.User, error)
}

type Gateway struct {
	baseURL     string
	credentials CredentialSource
	httpClient  *http.Client
	logger      *zap.Logger
}

func New(cfg *configs.Configs, logger *zap.Logger) *Gateway {
	return NewWithEndpoint(cfg.Endpoint(), cfg.Credentials, logger)
}

func NewWithEndpoint(baseURL string, credentials CredentialSource, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		baseURL:     strings.TrimRight(baseURL, "/"),
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: configs.RequestTimeout,
		},
		logger: logger,
	}
}

type apiRequest struct {
	method   string
	endpoint string
	query    url.Values
	body     interface{}
	header   http.Header
	auth     bool
}

func (g *Gateway) authorize(header http.Header) error {
	header.Set("x-source", CLI_SOURCE_HEADER)
	if g.credentials == nil {
		return nil
	}
	user, err := g.credentials.Restore()
	if err != nil {
		return err
	}
	if user != nil && user.AccessToken != "" {
		header.Set("Authorization", fmt.Sprintf("Bearer %s", user.AccessToken))
	}
	return nil
}

func (g *Gateway) newRequest(ctx context.Context, r *apiRequest) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r.body); err != nil {
			return nil, errors.Wrap(err, "encode body")
		}
		body = &buf
	}

	target := g.baseURL + r.endpoint
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	for k, values := range r.header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if r.auth {
		if err := g.authorize(req.Header); err != nil {
			return nil, err
		}
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", fmt.Sprintf("subquery-cli/%s", constants.Version))
	req.Header.Set("X-Request-Id", uuid.RequestID())
	return req, nil
}

// do sends the request and decodes the body into out, which may be nil when
// the caller only cares about success.
func (g *Gateway) do(ctx context.Context, r *apiRequest, out interface{}) error {
	req, err := g.newRequest(ctx, r)
	if err != nil {
		return err
	}

	start := time.Now()
	g.logger.Debug("api request",
		zap.String("method", r.method),
		zap.String("endpoint", r.endpoint),
		zap.String("request_id", req.Header.Get("X-Request-Id")),
	)
	res, err := g.httpClient.Do(req)
	if err != nil {
		return &cerrors.TransportError{Endpoint: r.endpoint, Err: errors.Wrapf(err, "%s %s", r.method, r.endpoint)}
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return &cerrors.TransportError{Endpoint: r.endpoint, Err: errors.Wrap(err, "read response")}
	}
	g.logger.Debug("api response",
		zap.String("endpoint", r.endpoint),
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", buf.Len()),
		zap.Duration("took", time.Since(start)),
	)

	return decodeResponse(r.endpoint, res.StatusCode, buf.Bytes(), out)
}

// decodeResponse applies the API's error convention: an object carrying
// statusCode, or a bare message, is a failure regardless of HTTP status.
func decodeResponse(endpoint string, status int, body []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(body)
	ok := status >= 200 && status < 300

	if len(trimmed) == 0 {
		if ok {
			return nil
		}
		return cerrors.NewAPIError(endpoint, status, http.StatusText(status))
	}

	if !json.Valid(trimmed) {
		if ok {
			return &cerrors.DecodeError{Endpoint: endpoint, Err: errors.Errorf("decoding response from %s: invalid json", endpoint)}
		}
		return cerrors.NewAPIError(endpoint, status, string(trimmed))
	}

	if trimmed[0] == '{' {
		var envelope struct {
			StatusCode *json.Number     `json:"statusCode"`
			Message    *json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if envelope.StatusCode != nil {
				code, _ := envelope.StatusCode.Int64()
				return cerrors.NewAPIError(endpoint, int(code), messageText(envelope.Message))
			}
			if envelope.Message != nil {
				return cerrors.NewAPIError(endpoint, 0, messageText(envelope.Message))
			}
		}
	}

	if !ok {
		return cerrors.NewAPIError(endpoint, status, http.StatusText(status))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return &cerrors.DecodeError{Endpoint: endpoint, Err: errors.Wrapf(err, "decoding response from %s", endpoint)}
	}
	return nil
}

// messageText accepts the message as a string or, for validation failures,
// a list of strings.
func messageText(raw *json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(*raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(*raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return string(*raw)
}

// escapeKey escapes each segment of a slash separated key such as
// org/project or org/repo.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func projectEndpoint(key string) string {
	return "/subqueries/" + escapeKey(key)
}

func deploymentsEndpoint(key string) string {
	return projectEndpoint(key) + "/deployments"
}

func deploymentEndpoint(key string, id uint64) string {
	return fmt.Sprintf("%s/%d", deploymentsEndpoint(key), id)
}
