package discordhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lakeward/discordhook/pkg/bucketstore"
)

const (
	APIVersion      = "v10"
	EndpointDiscord = "https://discord.com/api"
	UserAgent       = "discordhook (github.com/lakeward/discordhook)"
)

// RESTInterface is the HTTP boundary the webhook operations call through.
type RESTInterface interface {
	// Fetch constructs a request and returns the response body along with any
	// errors. Errors can include ErrUnauthorized and RestError.
	Fetch(s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error)
	FetchBJ(s *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error
	FetchJJ(s *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error
}

// Session contains the context for the webhook rest interface.
type Session struct {
	Context   context.Context
	Interface RESTInterface
	Buckets   *bucketstore.BucketStore
	Token     string
}

// NewSession returns a session using the passed rest interface. The token may
// be empty: webhook endpoints addressed by id and token need no authorization.
func NewSession(ctx context.Context, token string, httpInterface RESTInterface) *Session {
	return &Session{
		Context:   ctx,
		Interface: httpInterface,
		Buckets:   bucketstore.NewBucketStore(),
		Token:     token,
	}
}

// WaitForWebhookBucket blocks until the rate limit bucket of the passed
// webhook has a free slot, creating the bucket on first use.
func (s *Session) WaitForWebhookBucket(webhookID Snowflake) {
	_ = s.Buckets.CreateWaitForBucket(
		"webhook:"+webhookID.String(),
		WebhookRateLimitLimit,
		WebhookRateLimitDuration,
	)
}

// BaseInterface is the default HTTP interface and simply handles routing to
// the API host. Per-webhook rate limiting is applied by the execute
// operations, not here.
type BaseInterface struct {
	HTTP       *http.Client
	Logger     zerolog.Logger
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string
}

func NewBaseInterface() RESTInterface {
	return NewInterface(&http.Client{
		Timeout: 20 * time.Second,
	}, EndpointDiscord, APIVersion, UserAgent, zerolog.Nop())
}

func NewInterface(httpClient *http.Client, endpoint, version, useragent string, logger zerolog.Logger) RESTInterface {
	u, _ := url.Parse(endpoint)

	return &BaseInterface{
		HTTP:       httpClient,
		Logger:     logger,
		APIVersion: version,
		URLHost:    u.Host,
		URLScheme:  u.Scheme,
		UserAgent:  useragent,
	}
}

func (bi *BaseInterface) Fetch(session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(session.Context, method, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	req.URL.Host = bi.URLHost
	req.URL.Scheme = bi.URLScheme

	if index := strings.IndexByte(endpoint, '?'); index >= 0 {
		req.URL.RawQuery = endpoint[index+1:]
		req.URL.Path = endpoint[:index]
	}

	if bi.APIVersion != "" && !strings.HasPrefix(req.URL.Path, "/api") {
		req.URL.Path = "/api/" + bi.APIVersion + req.URL.Path
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", contentType)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	req.Header.Set("User-Agent", bi.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := bi.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	bi.Logger.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Msg("Fetched endpoint")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusCreated:
	case http.StatusNoContent:
	case http.StatusUnauthorized:
		return response, ErrUnauthorized
	default:
		return response, NewRestError(req, resp, response)
	}

	return response, nil
}

func (bi *BaseInterface) FetchBJ(session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := bi.Fetch(session, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil {
		err = json.Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (bi *BaseInterface) FetchJJ(session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte
	var err error

	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	} else {
		body = make([]byte, 0)
	}

	return bi.FetchBJ(session, method, endpoint, "application/json", body, headers, response)
}
