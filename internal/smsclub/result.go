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
	"encoding/json"
	"errors"
)

// resultKeyError is the key of the failure shape {"error": "<message>"}.
const resultKeyError = "error"

// Result is the outcome of one gateway request.
//
// A request either produced a decoded JSON object (Body and Raw are set) or
// failed locally or at the HTTP level (Error is set). The body schema belongs
// to the gateway and is passed through untouched, including error bodies the
// gateway returns with a 2xx status.
//
// A 2xx body that is valid JSON but not an object (an array, a scalar or null)
// is reported as a failure. Raw still holds that body so callers can decode it
// themselves.
type Result struct {
	// Body is the decoded JSON object returned by the gateway.
	Body map[string]any
	// Raw holds the undecoded response body.
	Raw json.RawMessage
	// StatusCode is the HTTP status, or zero when no response was received.
	StatusCode int
	// Error describes a transport, HTTP status or decoding failure.
	Error string
}

func failure(statusCode int, msg string) *Result {
	return &Result{StatusCode: statusCode, Error: msg}
}

// Failed reports whether the request failed before a JSON body was decoded.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Map returns the decoded body, or {"error": "<message>"} for a failed request.
func (r *Result) Map() map[string]any {
	if r.Failed() {
		return map[string]any{resultKeyError: r.Error}
	}
	return r.Body
}

// Decode unmarshals the raw response body into v.
func (r *Result) Decode(v any) error {
	if r.Failed() {
		return errors.New(r.Error)
	}
	return json.Unmarshal(r.Raw, v)
}

// MarshalJSON encodes the Map shape.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}
