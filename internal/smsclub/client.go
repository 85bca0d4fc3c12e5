/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package smsclub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	httpservice "github.com/futurum/smsclub/internal/system/http"
	"github.com/futurum/smsclub/internal/system/log"
)

// ClientInterface defines the operations of the SMSClub gateway client.
//
// SendSMS and GetSMSStatus return a *ValidationError for rejected input and
// never touch the network in that case. Transport and HTTP failures are not
// returned as errors: they are reported through Result.Error.
type ClientInterface interface {
	SendSMS(ctx context.Context, senderName, message string, phones ...string) (*Result, error)
	GetSMSStatus(ctx context.Context, smsIDs ...string) (*Result, error)
	GetSenderNames(ctx context.Context) *Result
	GetBalance(ctx context.Context) *Result
}

// Client implements ClientInterface for the SMSClub HTTP API.
//
// Requests may be issued concurrently. Credential setters are guarded and only
// affect requests dispatched after they return.
type Client struct {
	mu            sync.RWMutex
	login         string
	token         string
	integrationID int64

	baseURL    string
	httpClient httpservice.HTTPClientInterface
	metrics    *Metrics
}

var _ ClientInterface = (*Client)(nil)

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL overrides the gateway host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient sets the transport used for gateway requests.
func WithHTTPClient(client httpservice.HTTPClientInterface) Option {
	return func(c *Client) error {
		if client == nil {
			return fmt.Errorf("HTTP client cannot be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithIntegrationID sets the integration id sent with every message.
func WithIntegrationID(id string) Option {
	return func(c *Client) error {
		return c.SetIntegrationID(id)
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) error {
		c.metrics = m
		return nil
	}
}

// NewClient creates a client for the given account login and API token.
func NewClient(login, token string, opts ...Option) (*Client, error) {
	if err := ValidateLogin(login); err != nil {
		return nil, err
	}
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	client := &Client{
		login:      login,
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: httpservice.NewHTTPClient(),
	}
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// Login returns the account login.
func (c *Client) Login() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.login
}

// IntegrationID returns the integration id, or zero when none is set.
func (c *Client) IntegrationID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.integrationID
}

// SetLogin replaces the account login. An invalid login leaves the client unchanged.
func (c *Client) SetLogin(login string) error {
	if err := ValidateLogin(login); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.login = login
	return nil
}

// SetToken replaces the API token. An empty token leaves the client unchanged.
func (c *Client) SetToken(token string) error {
	if err := ValidateToken(token); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	return nil
}

// SetIntegrationID sets the integration id from its decimal form.
// Zero is treated as unset and is not sent.
func (c *Client) SetIntegrationID(id string) error {
	value, err := ParseIntegrationID(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.integrationID = value
	return nil
}

// ClearIntegrationID stops sending an integration id.
func (c *Client) ClearIntegrationID() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.integrationID = 0
}

// SendSMS sends message from senderName to every phone.
// Phones may contain formatting characters; they are reduced to digits first.
func (c *Client) SendSMS(ctx context.Context, senderName, message string, phones ...string) (*Result, error) {
	if err := ValidateSenderName(senderName); err != nil {
		c.metrics.invalid(EndpointSend)
		return nil, err
	}
	prepared, err := preparePhones(phones)
	if err != nil {
		c.metrics.invalid(EndpointSend)
		return nil, err
	}

	payload := map[string]any{
		payloadKeyPhone:   prepared,
		payloadKeyMessage: message,
		payloadKeySrcAddr: senderName,
	}
	if id := c.IntegrationID(); id != 0 {
		payload[payloadKeyIntegrationID] = id
	}

	return c.sendCommand(ctx, EndpointSend, payload), nil
}

// GetSMSStatus queries the delivery status of previously sent messages.
func (c *Client) GetSMSStatus(ctx context.Context, smsIDs ...string) (*Result, error) {
	prepared, err := prepareSMSIDs(smsIDs)
	if err != nil {
		c.metrics.invalid(EndpointStatus)
		return nil, err
	}

	return c.sendCommand(ctx, EndpointStatus, map[string]any{payloadKeySMSID: prepared}), nil
}

// GetSenderNames lists the alpha-names registered for the account.
func (c *Client) GetSenderNames(ctx context.Context) *Result {
	return c.sendCommand(ctx, EndpointOriginator, nil)
}

// GetBalance returns the account balance.
func (c *Client) GetBalance(ctx context.Context) *Result {
	return c.sendCommand(ctx, EndpointBalance, nil)
}

// sendCommand posts payload to the endpoint and normalizes every failure into the result.
func (c *Client) sendCommand(ctx context.Context, endpoint string, payload map[string]any) *Result {
	requestID := uuid.NewString()
	logger := log.GetLoggerOrNop().With(
		zap.String(log.LoggerKeyComponentName, clientLoggerComponentName),
		zap.String(log.LoggerKeyEndpoint, endpoint),
		zap.String(log.LoggerKeyRequestID, requestID),
	)

	start := time.Now()
	result, outcome := c.dispatch(ctx, logger, endpoint, payload)
	elapsed := time.Since(start)
	c.metrics.observe(endpoint, outcome, elapsed)

	if result.Failed() {
		logger.Error("SMSClub request failed", zap.String("outcome", outcome),
			zap.Int("statusCode", result.StatusCode), zap.Duration("duration", elapsed),
			zap.String("error", result.Error))
	} else {
		logger.Debug("SMSClub request completed", zap.Int("statusCode", result.StatusCode),
			zap.Duration("duration", elapsed))
	}
	return result
}

func (c *Client) dispatch(ctx context.Context, logger *zap.Logger, endpoint string,
	payload map[string]any) (*Result, string) {
	if payload == nil {
		payload = map[string]any{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return failure(0, fmt.Sprintf("failed to marshal request payload: %v", err)), OutcomeTransportError
	}

	c.mu.RLock()
	token := c.token
	login := c.login
	c.mu.RUnlock()

	requestURL := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return failure(0, fmt.Sprintf("failed to create HTTP request: %v", err)), OutcomeTransportError
	}
	req.Header.Set(headerAuthorization, bearerPrefix+token)
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerAccept, contentTypeJSON)

	logger.Debug("Sending request to SMSClub", zap.String("login", log.MaskString(login)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(0, err.Error()), OutcomeTransportError
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", zap.Error(closeErr))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(resp.StatusCode, fmt.Sprintf("failed to read response body: %v", err)),
			OutcomeTransportError
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return failure(resp.StatusCode, statusErrorMessage(req, resp.StatusCode, raw)), OutcomeHTTPError
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		result := failure(resp.StatusCode, fmt.Sprintf("failed to decode response: %v", err))
		result.Raw = json.RawMessage(raw)
		return result, OutcomeDecodeError
	}
	if decoded == nil {
		result := failure(resp.StatusCode, "failed to decode response: body is not a JSON object")
		result.Raw = json.RawMessage(raw)
		return result, OutcomeDecodeError
	}

	return &Result{
		Body:       decoded,
		Raw:        json.RawMessage(raw),
		StatusCode: resp.StatusCode,
	}, OutcomeSuccess
}

// statusErrorMessage describes a non-2xx response, quoting the start of its body.
func statusErrorMessage(req *http.Request, statusCode int, body []byte) string {
	kind := "Unexpected response"
	switch {
	case statusCode >= 400 && statusCode < 500:
		kind = "Client error"
	case statusCode >= 500:
		kind = "Server error"
	}

	snippet := string(body)
	if len(body) > errorBodySnippetLength {
		snippet = string(body[:errorBodySnippetLength]) + " (truncated...)"
	}

	msg := fmt.Sprintf("%s: `%s %s` resulted in a `%d %s` response", kind, req.Method, req.URL.String(),
		statusCode, http.StatusText(statusCode))
	if snippet != "" {
		msg += ":\n" + snippet
	}
	return msg
}
