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

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type LogTestSuite struct {
	suite.Suite
	original *zap.Logger
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.original = logger
}

func (suite *LogTestSuite) TearDownTest() {
	SetLogger(suite.original)
}

func (suite *LogTestSuite) TestInitLoggerLevels() {
	testCases := []struct {
		name     string
		level    string
		expected zapcore.Level
		isValid  bool
	}{
		{"DefaultLevel", "", zapcore.InfoLevel, true},
		{"DebugLevel", "debug", zapcore.DebugLevel, true},
		{"UpperCaseLevel", "WARN", zapcore.WarnLevel, true},
		{"ErrorLevel", "error", zapcore.ErrorLevel, true},
		{"InvalidLevel", "unknown", zapcore.InfoLevel, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			SetLogger(nil)
			err := InitLogger(tc.level)
			if !tc.isValid {
				assert.Error(suite.T(), err)
				assert.Panics(suite.T(), func() { GetLogger() })
				return
			}
			assert.NoError(suite.T(), err)
			l := GetLogger()
			assert.True(suite.T(), l.Core().Enabled(tc.expected))
			if tc.expected > zapcore.DebugLevel {
				assert.False(suite.T(), l.Core().Enabled(tc.expected-1))
			}
		})
	}
}

func (suite *LogTestSuite) TestGetLoggerPanicsWhenUninitialized() {
	SetLogger(nil)
	assert.Panics(suite.T(), func() { GetLogger() })
}

func (suite *LogTestSuite) TestGetLoggerOrNop() {
	SetLogger(nil)
	assert.NotNil(suite.T(), GetLoggerOrNop())

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	GetLoggerOrNop().Info("hello")
	assert.Equal(suite.T(), 1, logs.Len())
}

func (suite *LogTestSuite) TestSyncWithoutLogger() {
	SetLogger(nil)
	assert.NotPanics(suite.T(), Sync)
}

func (suite *LogTestSuite) TestMaskString() {
	assert.Equal(suite.T(), "", MaskString(""))
	assert.Equal(suite.T(), "***", MaskString("abc"))
	assert.Equal(suite.T(), "3**********7", MaskString("380991234567"))
}
