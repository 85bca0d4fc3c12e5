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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/futurum/smsclub/internal/smsclub"
	"github.com/futurum/smsclub/internal/smsclub/provider"
	"github.com/futurum/smsclub/internal/system/config"
	"github.com/futurum/smsclub/internal/system/log"
)

// DefaultConfigPath is the deployment file location relative to the home directory.
var DefaultConfigPath = filepath.Join("repository", "conf", "deployment.yaml")

// errRequestFailed marks a command whose gateway request returned an error result.
var errRequestFailed = errors.New("gateway request failed")

// ClientFactory builds the gateway client from the loaded configuration.
type ClientFactory func(cfg *config.Config) (smsclub.ClientInterface, error)

// DefaultClientFactory builds the client through the SMSClub provider.
// A one-shot command never exposes a metrics endpoint, so collectors enabled by
// metrics.enabled go to a private registry and not prometheus.DefaultRegisterer.
func DefaultClientFactory(cfg *config.Config) (smsclub.ClientInterface, error) {
	p, err := provider.NewSMSClubProviderWithRegisterer(cfg, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	return p.GetClient(), nil
}

type rootOptions struct {
	home       string
	configPath string
	envFile    string
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	opts      rootOptions
	newClient ClientFactory
	client    smsclub.ClientInterface
}

// NewRootCommand builds the smsclub command tree.
func NewRootCommand(version string, factory ClientFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultClientFactory
	}
	a := &app{newClient: factory}

	rootCmd := &cobra.Command{
		Use:   "smsclub",
		Short: "Send SMS and query account data through the SMSClub gateway",
		Long: `smsclub is a command-line client for the SMSClub SMS gateway.

It sends messages, checks delivery status, lists sender names and shows the
account balance. Responses are printed as JSON exactly as the gateway returns
them; local failures are printed as {"error": "..."}.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "smsclub version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.home, "home", "", "Home directory (default: current working directory)")
	flags.StringVar(&a.opts.configPath, "config", "",
		"Path to the deployment YAML file (default: <home>/"+DefaultConfigPath+")")
	flags.StringVar(&a.opts.envFile, "env-file", "", "Path to a .env file (default: <home>/.env, if present)")

	rootCmd.AddCommand(newSendCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newSendersCmd(a))
	rootCmd.AddCommand(newBalanceCmd(a))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer log.Sync()

	if err := NewRootCommand(version, nil).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// gatewayClient loads the configuration, initializes the logger and builds the
// client on first use.
func (a *app) gatewayClient() (smsclub.ClientInterface, error) {
	if a.client != nil {
		return a.client, nil
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := log.InitLogger(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := a.newClient(cfg)
	if err != nil {
		log.GetLogger().Error("Failed to create SMSClub client", zap.Error(err))
		return nil, err
	}
	a.client = client
	return client, nil
}

func (a *app) loadConfig() (*config.Config, error) {
	home := a.opts.home
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		home = dir
	}

	if a.opts.envFile != "" {
		if err := config.LoadEnvFile(a.opts.envFile, true); err != nil {
			return nil, err
		}
	} else if err := config.LoadEnvFile(filepath.Join(home, ".env"), false); err != nil {
		return nil, err
	}

	var cfg *config.Config
	if a.opts.configPath != "" {
		loaded, err := config.LoadConfig(a.opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadConfig(filepath.Join(home, DefaultConfigPath))
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, fs.ErrNotExist):
			cfg = config.Default()
		default:
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printResult writes the result as indented JSON and reports failed requests as an error.
func printResult(cmd *cobra.Command, result *smsclub.Result) error {
	encoded, err := json.MarshalIndent(result.Map(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	if result.Failed() {
		return errRequestFailed
	}
	return nil
}
