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
	"regexp"
	"strconv"
	"strings"
)

var (
	loginRegex     = regexp.MustCompile(`^380\d{9}$`)
	phoneRegex     = regexp.MustCompile(`^380\d{9}$`)
	alphaNameRegex = regexp.MustCompile(`^[\w\s.\-]{1,11}$`)
	nonDigitRegex  = regexp.MustCompile(`\D`)
	// numericRegex accepts decimal numbers with optional sign, fraction, exponent and surrounding whitespace.
	numericRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?[ \t\n\r\v\f]*$`)
)

// ValidateLogin checks that login is an account number in the 380YYXXXXXXX format.
func ValidateLogin(login string) error {
	if !loginRegex.MatchString(login) {
		return newValidationError(ErrorInvalidLogin, "")
	}
	return nil
}

// ValidateToken checks that the API token is not empty.
func ValidateToken(token string) error {
	if token == "" {
		return newValidationError(ErrorInvalidToken, "")
	}
	return nil
}

// ParseIntegrationID parses a decimal integration id.
func ParseIntegrationID(id string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return 0, newValidationError(ErrorInvalidIntegrationID, "")
	}
	return value, nil
}

// ValidateSenderName checks an alpha-name: 1 to 11 word characters, spaces, dots or hyphens.
func ValidateSenderName(name string) error {
	if !alphaNameRegex.MatchString(name) {
		return newValidationError(ErrorInvalidAlphaName, "")
	}
	return nil
}

// NormalizePhone removes every character that is not a digit.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// ValidatePhone normalizes phone and checks it is 380 followed by 9 digits.
// The error message quotes the phone as given by the caller.
func ValidatePhone(phone string) (string, error) {
	normalized := NormalizePhone(phone)
	if !phoneRegex.MatchString(normalized) {
		return "", newValidationError(ErrorInvalidPhone, phone)
	}
	return normalized, nil
}

// ValidateSMSID checks that an SMS id is numeric.
func ValidateSMSID(id string) error {
	if !numericRegex.MatchString(id) {
		return newValidationError(ErrorInvalidSMSID, id)
	}
	return nil
}

// preparePhones validates a batch of phones and returns them normalized.
// It stops at the first invalid entry. An empty batch yields an empty, non-nil slice.
func preparePhones(phones []string) ([]string, error) {
	if len(phones) > ArrayLimit {
		return nil, newValidationError(ErrorPhoneLimitExceeded, "")
	}

	prepared := make([]string, 0, len(phones))
	for _, phone := range phones {
		normalized, err := ValidatePhone(phone)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, normalized)
	}
	return prepared, nil
}

// prepareSMSIDs validates a batch of SMS ids. It stops at the first invalid entry.
func prepareSMSIDs(ids []string) ([]string, error) {
	if len(ids) > ArrayLimit {
		return nil, newValidationError(ErrorSMSIDLimitExceeded, "")
	}

	prepared := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := ValidateSMSID(id); err != nil {
			return nil, err
		}
		prepared = append(prepared, id)
	}
	return prepared, nil
}
