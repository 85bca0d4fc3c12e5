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

// Package provider builds the SMSClub client from the deployment configuration.
package provider

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/futurum/smsclub/internal/smsclub"
	"github.com/futurum/smsclub/internal/system/config"
	httpservice "github.com/futurum/smsclub/internal/system/http"
	"github.com/futurum/smsclub/internal/system/log"
)

const providerLoggerComponentName = "SMSClubProvider"

// SMSClubProviderInterface defines the interface for the SMSClub client provider.
type SMSClubProviderInterface interface {
	GetClient() smsclub.ClientInterface
}

// SMSClubProvider is the default implementation of the SMSClubProviderInterface.
// It owns exactly one client for its lifetime.
type SMSClubProvider struct {
	client *smsclub.Client
}

// NewSMSClubProvider creates the provider and its client from cfg.
// Metrics are registered on prometheus.DefaultRegisterer when enabled.
func NewSMSClubProvider(cfg *config.Config) (SMSClubProviderInterface, error) {
	return NewSMSClubProviderWithRegisterer(cfg, prometheus.DefaultRegisterer)
}

// NewSMSClubProviderWithRegisterer is NewSMSClubProvider with an explicit metrics registerer.
func NewSMSClubProviderWithRegisterer(cfg *config.Config,
	reg prometheus.Registerer) (SMSClubProviderInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := log.GetLoggerOrNop().With(zap.String(log.LoggerKeyComponentName, providerLoggerComponentName))

	smsCfg := cfg.SMSClub
	opts := []smsclub.Option{
		smsclub.WithHTTPClient(httpservice.NewHTTPClientWithTimeout(smsCfg.Timeout)),
	}
	if smsCfg.BaseURL != "" {
		opts = append(opts, smsclub.WithBaseURL(smsCfg.BaseURL))
	}
	if smsCfg.IntegrationID != "" {
		opts = append(opts, smsclub.WithIntegrationID(smsCfg.IntegrationID))
	}
	if cfg.Metrics.Enabled {
		metrics, err := smsclub.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("failed to register SMSClub metrics: %w", err)
		}
		opts = append(opts, smsclub.WithMetrics(metrics))
	}

	client, err := smsclub.NewClient(smsCfg.Login, smsCfg.Token, opts...)
	if err != nil {
		logger.Error("Failed to create SMSClub client", zap.Error(err))
		return nil, fmt.Errorf("failed to create SMSClub client: %w", err)
	}
	logger.Debug("SMSClub client created", zap.String("login", log.MaskString(smsCfg.Login)),
		zap.Bool("metrics", cfg.Metrics.Enabled))

	return &SMSClubProvider{client: client}, nil
}

// GetClient returns the client instance owned by the provider.
func (p *SMSClubProvider) GetClient() smsclub.ClientInterface {
	return p.client
}
