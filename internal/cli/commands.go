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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSendCmd(a *app) *cobra.Command {
	var (
		from    string
		message string
	)

	cmd := &cobra.Command{
		Use:   "send --from <sender> --message <text> <phone>...",
		Short: "Send a message to one or more phone numbers",
		Long: `Send a message to up to 100 phone numbers in one request.

Phone numbers may contain spaces, dashes, brackets or a leading +; they are
reduced to digits and must then look like 380YYXXXXXXX.`,
		Example: `  smsclub send --from Shop --message "Your order is ready" "+380 99 123 45 67"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.gatewayClient()
			if err != nil {
				return err
			}
			result, err := client.SendSMS(cmd.Context(), from, message, args...)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Sender name (alpha-name), up to 11 characters")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message text")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <sms-id>...",
		Short: "Query the delivery status of sent messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.gatewayClient()
			if err != nil {
				return err
			}
			result, err := client.GetSMSStatus(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func newSendersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "senders",
		Aliases: []string{"originators"},
		Short:   "List the sender names available to the account",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.gatewayClient()
			if err != nil {
				return err
			}
			return printResult(cmd, client.GetSenderNames(cmd.Context()))
		},
	}
}

func newBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.gatewayClient()
			if err != nil {
				return err
			}
			return printResult(cmd, client.GetBalance(cmd.Context()))
		},
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "smsclub version %s\n", version)
		},
	}
}
