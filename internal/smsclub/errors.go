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
	"errors"
	"fmt"

	"github.com/futurum/smsclub/internal/system/error/serviceerror"
)

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("smsclub: validation failed")

// ValidationError reports caller input rejected before any request is sent.
type ValidationError struct {
	Code    string
	Message string
}

// Error returns the human readable message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// newValidationError builds a ValidationError from a catalogue entry, appending detail when present.
func newValidationError(def serviceerror.ServiceError, detail string) *ValidationError {
	msg := def.ErrorDescription
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", def.ErrorDescription, detail)
	}
	return &ValidationError{
		Code:    def.Code,
		Message: msg,
	}
}

// Client errors for credential and request validation.
var (
	// ErrorInvalidLogin is returned when the login is not a 380YYXXXXXXX number.
	ErrorInvalidLogin = serviceerror.ServiceError{
		Type:  serviceerror.ClientErrorType,
		Code:  "SMS-1001",
		Error: "Invalid login",
		ErrorDescription: "Login must be in format: 380YYXXXXXXX " +
			"(YY - operator code, XXXXXXX - abonent number)",
	}
	// ErrorInvalidToken is returned when the API token is empty.
	ErrorInvalidToken = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SMS-1002",
		Error:            "Invalid token",
		ErrorDescription: "Token can't be empty",
	}
	// ErrorInvalidIntegrationID is returned when the integration id is not an integer.
	ErrorInvalidIntegrationID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SMS-1003",
		Error:            "Invalid integration ID",
		ErrorDescription: "Wrong type of integration ID. Should be an integer",
	}
	// ErrorInvalidAlphaName is returned when the sender name is malformed.
	ErrorInvalidAlphaName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SMS-1004",
		Error:            "Invalid alpha-name",
		ErrorDescription: "Wrong alpha-name",
	}
	// ErrorInvalidPhone is returned for a phone that is not 380 followed by 9 digits.
	ErrorInvalidPhone = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SMS-1005",
		Error:            "Invalid phone number",
		ErrorDescription: "Wrong phone number",
	}
	// ErrorInvalidSMSID is returned for an SMS id that is not numeric.
	ErrorInvalidSMSID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SMS-1006",
		Error:            "Invalid SMS ID",
		ErrorDescription: "Wrong SMS ID",
	}
	// ErrorPhoneLimitExceeded is returned when more than ArrayLimit phones are given.
	ErrorPhoneLimitExceeded = serviceerror.ServiceError{
		Type:  serviceerror.ClientErrorType,
		Code:  "SMS-1007",
		Error: "Sending limit exceeded",
		ErrorDescription: fmt.Sprintf("One-time sending limit has been exceeded. "+
			"Should be no more than %d numbers in the array", ArrayLimit),
	}
	// ErrorSMSIDLimitExceeded is returned when more than ArrayLimit ids are given.
	ErrorSMSIDLimitExceeded = serviceerror.ServiceError{
		Type:  serviceerror.ClientErrorType,
		Code:  "SMS-1008",
		Error: "Status limit exceeded",
		ErrorDescription: fmt.Sprintf("One-time sending limit has been exceeded. "+
			"Should be no more than %d IDs in the array", ArrayLimit),
	}
)
