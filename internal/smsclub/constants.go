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

const (
	// DefaultBaseURL is the SMSClub API host.
	DefaultBaseURL = "https://im.smsclub.mobi"

	// EndpointSend accepts a batch of messages.
	EndpointSend = "/sms/send"
	// EndpointStatus reports delivery status for message ids.
	EndpointStatus = "/sms/status"
	// EndpointOriginator lists the sender names (alpha-names) of the account.
	EndpointOriginator = "/sms/originator"
	// EndpointBalance reports the account balance.
	EndpointBalance = "/sms/balance"

	// ArrayLimit is the maximum number of phones or ids accepted in one request.
	ArrayLimit = 100
)

const (
	clientLoggerComponentName = "SMSClubClient"

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	contentTypeJSON     = "application/json"
	bearerPrefix        = "Bearer "

	// errorBodySnippetLength bounds how much of an error response is copied into a result.
	errorBodySnippetLength = 120
)

// Payload keys understood by the gateway.
const (
	payloadKeyPhone         = "phone"
	payloadKeyMessage       = "message"
	payloadKeySrcAddr       = "src_addr"
	payloadKeyIntegrationID = "integration_id"
	payloadKeySMSID         = "id_sms"
)
