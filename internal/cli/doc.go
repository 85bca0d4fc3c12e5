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

// Package cli implements the smsclub command-line interface.
//
// The commands map one to one onto the gateway operations:
//   - send: send a message to one or more phone numbers
//   - status: query the delivery status of sent messages
//   - senders: list the sender names (alpha-names) of the account
//   - balance: show the account balance
//   - version: display version information
//
// Every command prints the gateway response as JSON. Credentials come from
// the deployment YAML file, an optional .env file and SMSCLUB_* variables.
package cli
