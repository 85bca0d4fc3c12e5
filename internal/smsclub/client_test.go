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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	httpservice "github.com/futurum/smsclub/internal/system/http"
)

const (
	testLogin = "380991234567"
	testToken = "test-token"
)

// capturedRequest is what the fake gateway saw for one request.
type capturedRequest struct {
	Method  string
	Path    string
	Header  http.Header
	Payload map[string]any
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	response string
	client   *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	suite.requests = nil
	suite.status = http.StatusOK
	suite.response = `{"success_request":{"info":{}}}`

	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(suite.T(), err)

		var payload map[string]any
		assert.NoError(suite.T(), json.Unmarshal(body, &payload))

		suite.mu.Lock()
		suite.requests = append(suite.requests, capturedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			Header:  r.Header.Clone(),
			Payload: payload,
		})
		status, response := suite.status, suite.response
		suite.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))

	client, err := NewClient(testLogin, testToken, WithBaseURL(suite.server.URL))
	require.NoError(suite.T(), err)
	suite.client = client
}

func (suite *ClientTestSuite) respond(status int, body string) {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.status = status
	suite.response = body
}

func (suite *ClientTestSuite) respondStatus(status int) {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.status = status
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) captured() []capturedRequest {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	return append([]capturedRequest(nil), suite.requests...)
}

func (suite *ClientTestSuite) lastRequest() capturedRequest {
	requests := suite.captured()
	require.NotEmpty(suite.T(), requests)
	return requests[len(requests)-1]
}

func (suite *ClientTestSuite) TestNewClient() {
	client, err := NewClient(testLogin, testToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), testLogin, client.Login())
	assert.Equal(suite.T(), DefaultBaseURL, client.baseURL)
	assert.Zero(suite.T(), client.IntegrationID())
}

func (suite *ClientTestSuite) TestNewClientValidation() {
	_, err := NewClient("12345", testToken)
	assert.ErrorIs(suite.T(), err, ErrValidation)

	_, err = NewClient(testLogin, "")
	assert.ErrorIs(suite.T(), err, ErrValidation)

	_, err = NewClient(testLogin, testToken, WithIntegrationID("abc"))
	assert.ErrorIs(suite.T(), err, ErrValidation)

	_, err = NewClient(testLogin, testToken, WithBaseURL(""))
	assert.Error(suite.T(), err)

	_, err = NewClient(testLogin, testToken, WithHTTPClient(nil))
	assert.Error(suite.T(), err)
}

func (suite *ClientTestSuite) TestSetLogin() {
	require.NoError(suite.T(), suite.client.SetLogin("380501112233"))
	assert.Equal(suite.T(), "380501112233", suite.client.Login())

	err := suite.client.SetLogin("0501112233")
	assert.ErrorIs(suite.T(), err, ErrValidation)
	assert.Equal(suite.T(), "380501112233", suite.client.Login())
}

func (suite *ClientTestSuite) TestSetToken() {
	require.NoError(suite.T(), suite.client.SetToken("new-token"))
	suite.client.GetBalance(context.Background())
	assert.Equal(suite.T(), "Bearer new-token", suite.lastRequest().Header.Get("Authorization"))

	err := suite.client.SetToken("")
	assert.ErrorIs(suite.T(), err, ErrValidation)
	suite.client.GetBalance(context.Background())
	assert.Equal(suite.T(), "Bearer new-token", suite.lastRequest().Header.Get("Authorization"))
}

func (suite *ClientTestSuite) TestSetIntegrationID() {
	require.NoError(suite.T(), suite.client.SetIntegrationID("42"))
	assert.Equal(suite.T(), int64(42), suite.client.IntegrationID())

	err := suite.client.SetIntegrationID("4x2")
	assert.ErrorIs(suite.T(), err, ErrValidation)
	assert.Equal(suite.T(), int64(42), suite.client.IntegrationID())

	suite.client.ClearIntegrationID()
	assert.Zero(suite.T(), suite.client.IntegrationID())
}

func (suite *ClientTestSuite) TestSendSMS() {
	suite.respond(http.StatusOK, `{"success_request":{"info":{"1001":"380991234567"}}}`)

	result, err := suite.client.SendSMS(context.Background(), "Shop", "hello", "+380 99 123 45 67")
	require.NoError(suite.T(), err)
	require.False(suite.T(), result.Failed())
	assert.Equal(suite.T(), http.StatusOK, result.StatusCode)
	assert.Equal(suite.T(), map[string]any{
		"success_request": map[string]any{"info": map[string]any{"1001": "380991234567"}},
	}, result.Body)

	req := suite.lastRequest()
	assert.Equal(suite.T(), http.MethodPost, req.Method)
	assert.Equal(suite.T(), EndpointSend, req.Path)
	assert.Equal(suite.T(), "Bearer "+testToken, req.Header.Get("Authorization"))
	assert.Equal(suite.T(), "application/json", req.Header.Get("Content-Type"))
	assert.Equal(suite.T(), map[string]any{
		"phone":    []any{"380991234567"},
		"message":  "hello",
		"src_addr": "Shop",
	}, req.Payload)
}

func (suite *ClientTestSuite) TestSendSMSWithIntegrationID() {
	require.NoError(suite.T(), suite.client.SetIntegrationID("42"))

	_, err := suite.client.SendSMS(context.Background(), "Shop", "hello", testLogin)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(42), suite.lastRequest().Payload["integration_id"])

	suite.client.ClearIntegrationID()
	_, err = suite.client.SendSMS(context.Background(), "Shop", "hello", testLogin)
	require.NoError(suite.T(), err)
	assert.NotContains(suite.T(), suite.lastRequest().Payload, "integration_id")
}

func (suite *ClientTestSuite) TestSendSMSScalarEqualsList() {
	_, err := suite.client.SendSMS(context.Background(), "A", "hi", "380991234567")
	require.NoError(suite.T(), err)
	_, err = suite.client.SendSMS(context.Background(), "A", "hi", []string{"380991234567"}...)
	require.NoError(suite.T(), err)

	requests := suite.captured()
	require.Len(suite.T(), requests, 2)
	assert.Equal(suite.T(), requests[0].Payload, requests[1].Payload)
}

func (suite *ClientTestSuite) TestSendSMSBatchLimit() {
	_, err := suite.client.SendSMS(context.Background(), "A", "hi", phones(ArrayLimit+1)...)
	assert.ErrorIs(suite.T(), err, ErrValidation)
	assert.Empty(suite.T(), suite.captured())

	result, err := suite.client.SendSMS(context.Background(), "A", "hi", phones(ArrayLimit)...)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Failed())
	assert.Len(suite.T(), suite.lastRequest().Payload["phone"], ArrayLimit)
}

func (suite *ClientTestSuite) TestSendSMSValidationFailuresSkipNetwork() {
	testCases := []struct {
		name   string
		sender string
		phones []string
		code   string
	}{
		{"InvalidSender", "toolongsendername!", []string{testLogin}, ErrorInvalidAlphaName.Code},
		{"InvalidPhone", "A", []string{testLogin, "12345"}, ErrorInvalidPhone.Code},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result, err := suite.client.SendSMS(context.Background(), tc.sender, "x", tc.phones...)
			assert.Nil(suite.T(), result)
			var vErr *ValidationError
			require.ErrorAs(suite.T(), err, &vErr)
			assert.Equal(suite.T(), tc.code, vErr.Code)
		})
	}
	assert.Empty(suite.T(), suite.captured())
}

func (suite *ClientTestSuite) TestSendSMSEmptyPhoneListIsSent() {
	result, err := suite.client.SendSMS(context.Background(), "A", "hi")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), result)

	requests := suite.captured()
	require.Len(suite.T(), requests, 1)
	assert.Equal(suite.T(), []any{}, requests[0].Payload["phone"])
}

func (suite *ClientTestSuite) TestGetSMSStatusEmptyIDListIsSent() {
	result, err := suite.client.GetSMSStatus(context.Background())
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), result)

	requests := suite.captured()
	require.Len(suite.T(), requests, 1)
	assert.Equal(suite.T(), map[string]any{"id_sms": []any{}}, requests[0].Payload)
}

func (suite *ClientTestSuite) TestGetSMSStatus() {
	suite.respond(http.StatusOK, `{"success_request":{"info":{"1001":"DELIVRD"}}}`)

	result, err := suite.client.GetSMSStatus(context.Background(), "1001", "1002")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Failed())

	req := suite.lastRequest()
	assert.Equal(suite.T(), EndpointStatus, req.Path)
	assert.Equal(suite.T(), map[string]any{"id_sms": []any{"1001", "1002"}}, req.Payload)
}

func (suite *ClientTestSuite) TestGetSMSStatusInvalidID() {
	result, err := suite.client.GetSMSStatus(context.Background(), "abc")
	assert.Nil(suite.T(), result)
	assert.EqualError(suite.T(), err, "Wrong SMS ID: abc")
	assert.ErrorIs(suite.T(), err, ErrValidation)
	assert.Empty(suite.T(), suite.captured())
}

func (suite *ClientTestSuite) TestGetSenderNames() {
	suite.respond(http.StatusOK, `{"success_request":{"info":["Shop","Info"]}}`)

	result := suite.client.GetSenderNames(context.Background())
	assert.False(suite.T(), result.Failed())

	req := suite.lastRequest()
	assert.Equal(suite.T(), EndpointOriginator, req.Path)
	assert.Equal(suite.T(), map[string]any{}, req.Payload)
}

func (suite *ClientTestSuite) TestGetBalance() {
	suite.respond(http.StatusOK, `{"balance": 10.5}`)

	result := suite.client.GetBalance(context.Background())
	require.False(suite.T(), result.Failed())
	assert.Equal(suite.T(), map[string]any{"balance": 10.5}, result.Map())
	assert.JSONEq(suite.T(), `{"balance": 10.5}`, string(result.Raw))

	req := suite.lastRequest()
	assert.Equal(suite.T(), EndpointBalance, req.Path)
	assert.Equal(suite.T(), map[string]any{}, req.Payload)
}

func (suite *ClientTestSuite) TestGatewayErrorBodyPassesThrough() {
	suite.respond(http.StatusOK, `{"error_request":{"info":"Wrong token","status":401}}`)

	result := suite.client.GetBalance(context.Background())
	assert.False(suite.T(), result.Failed())
	assert.Contains(suite.T(), result.Body, "error_request")
}

func (suite *ClientTestSuite) TestTransportFailure() {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closed.Close()
	client, err := NewClient(testLogin, testToken, WithBaseURL(closed.URL))
	require.NoError(suite.T(), err)

	var result *Result
	assert.NotPanics(suite.T(), func() { result = client.GetBalance(context.Background()) })
	require.True(suite.T(), result.Failed())
	assert.Zero(suite.T(), result.StatusCode)
	assert.Contains(suite.T(), result.Map(), "error")
	assert.NotEmpty(suite.T(), result.Map()["error"])
}

func (suite *ClientTestSuite) TestHTTPErrorStatus() {
	suite.respond(http.StatusUnauthorized, `{"message":"Unauthenticated."}`)

	result := suite.client.GetBalance(context.Background())
	require.True(suite.T(), result.Failed())
	assert.Equal(suite.T(), http.StatusUnauthorized, result.StatusCode)
	assert.Contains(suite.T(), result.Error, "Client error")
	assert.Contains(suite.T(), result.Error, "401 Unauthorized")
	assert.Contains(suite.T(), result.Error, "Unauthenticated.")
}

func (suite *ClientTestSuite) TestHTTPErrorBodyIsTruncated() {
	suite.respond(http.StatusBadGateway, strings.Repeat("x", 500))

	result := suite.client.GetBalance(context.Background())
	require.True(suite.T(), result.Failed())
	assert.Contains(suite.T(), result.Error, "Server error")
	assert.Contains(suite.T(), result.Error, "(truncated...)")
	assert.Less(suite.T(), len(result.Error), 400)
}

func (suite *ClientTestSuite) TestUndecodableBody() {
	for _, body := range []string{"not json", "[1,2]", "null", ""} {
		suite.respond(http.StatusOK, body)
		result := suite.client.GetBalance(context.Background())
		require.True(suite.T(), result.Failed(), body)
		assert.Contains(suite.T(), result.Error, "failed to decode response")
		assert.Equal(suite.T(), body, string(result.Raw))
	}
}

func (suite *ClientTestSuite) TestNonObjectBodyRecoverableFromRaw() {
	suite.respond(http.StatusOK, `["Shop","Info"]`)

	result := suite.client.GetSenderNames(context.Background())
	require.True(suite.T(), result.Failed())
	assert.Equal(suite.T(), map[string]any{"error": result.Error}, result.Map())

	var names []string
	require.NoError(suite.T(), json.Unmarshal(result.Raw, &names))
	assert.Equal(suite.T(), []string{"Shop", "Info"}, names)
}

func (suite *ClientTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := suite.client.GetBalance(ctx)
	require.True(suite.T(), result.Failed())
	assert.Contains(suite.T(), result.Error, "context canceled")
	assert.Empty(suite.T(), suite.captured())
}

func (suite *ClientTestSuite) TestCustomHTTPClient() {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer slow.Close()

	client, err := NewClient(testLogin, testToken, WithBaseURL(slow.URL+"/"),
		WithHTTPClient(httpservice.NewHTTPClientWithTimeout(20*time.Millisecond)))
	require.NoError(suite.T(), err)

	result := client.GetBalance(context.Background())
	assert.True(suite.T(), result.Failed())
}

func (suite *ClientTestSuite) TestMetrics() {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(suite.T(), err)
	client, err := NewClient(testLogin, testToken, WithBaseURL(suite.server.URL), WithMetrics(metrics))
	require.NoError(suite.T(), err)

	client.GetBalance(context.Background())
	client.GetBalance(context.Background())
	_, _ = client.GetSMSStatus(context.Background(), "abc")
	suite.respondStatus(http.StatusInternalServerError)
	client.GetSenderNames(context.Background())

	assert.Equal(suite.T(), 2.0,
		testutil.ToFloat64(metrics.requests.WithLabelValues(EndpointBalance, OutcomeSuccess)))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(metrics.requests.WithLabelValues(EndpointStatus, OutcomeInvalid)))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(metrics.requests.WithLabelValues(EndpointOriginator, OutcomeHTTPError)))
	assert.Equal(suite.T(), 2, testutil.CollectAndCount(metrics.duration))
}

func (suite *ClientTestSuite) TestMetricsReuseRegisteredCollectors() {
	registry := prometheus.NewRegistry()
	first, err := NewMetrics(registry)
	require.NoError(suite.T(), err)
	second, err := NewMetrics(registry)
	require.NoError(suite.T(), err)

	first.observe(EndpointBalance, OutcomeSuccess, time.Millisecond)
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(second.requests.WithLabelValues(EndpointBalance, OutcomeSuccess)))
}

func (suite *ClientTestSuite) TestConcurrentRequestsAndTokenRotation() {
	var wg sync.WaitGroup
	var failed atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if suite.client.GetBalance(context.Background()).Failed() {
				failed.Add(1)
			}
		}()
		go func() {
			defer wg.Done()
			_ = suite.client.SetToken("rotated-token")
		}()
	}
	wg.Wait()

	assert.Zero(suite.T(), failed.Load())
	assert.Len(suite.T(), suite.captured(), 10)
	for _, req := range suite.captured() {
		assert.Contains(suite.T(), []string{"Bearer " + testToken, "Bearer rotated-token"},
			req.Header.Get("Authorization"))
	}
}
