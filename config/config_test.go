// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/flowcontrol/network/flowcontrol"
	"github.com/ava-labs/flowcontrol/utils/logging"
	"github.com/ava-labs/flowcontrol/version"
)

func getConfig(t *testing.T, args ...string) (Config, error) {
	t.Helper()

	v, err := BuildViper(BuildFlagSet(), args)
	require.NoError(t, err)
	return GetConfig(v)
}

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	config, err := getConfig(t)
	require.NoError(err)
	require.Equal(flowcontrol.DefaultConfig(), config.FlowControlConfig)
	require.Equal(logging.Info, config.LoggingConfig.LogLevel)
	require.Equal(logging.Info, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.Plain, config.LoggingConfig.LogFormat)
	require.Empty(config.LoggingConfig.Directory)
	require.Equal("flow_control", config.MetricsNamespace)
	require.Equal(version.Current, config.SimulationConfig.RemoteOverlayProtocolVersion)
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	config, err := getConfig(t,
		"--flow-control-peer-flood-reading-capacity=10",
		"--flow-control-peer-reading-capacity=20",
		"--flow-control-bytes-total=200000",
		"--overlay-protocol-version=31",
		"--remote-overlay-protocol-version=32",
		"--simulate-messages=5",
		"--simulate-message-size=64",
		"--log-level=debug",
		"--log-display-level=warn",
		"--log-format=json",
	)
	require.NoError(err)
	require.Equal(flowcontrol.Config{
		PeerFloodReadingCapacity: 10,
		PeerReadingCapacity:      20,
		BytesTotal:               200_000,
		MaxTxSize:                flowcontrol.DefaultMaxTxSize,
		OverlayProtocolVersion:   31,
	}, config.FlowControlConfig)
	require.Equal(SimulationConfig{
		Messages:                     5,
		MessageSize:                  64,
		RemoteOverlayProtocolVersion: 32,
	}, config.SimulationConfig)
	require.Equal(logging.Debug, config.LoggingConfig.LogLevel)
	require.Equal(logging.Warn, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.JSON, config.LoggingConfig.LogFormat)
}

func TestGetConfigDisplayLevelInherited(t *testing.T) {
	config, err := getConfig(t, "--log-level=verbo")
	require.NoError(t, err)
	require.Equal(t, logging.Verbo, config.LoggingConfig.DisplayLevel)
}

func TestGetConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(os.WriteFile(configFile, []byte(`{
		"flow-control-peer-flood-reading-capacity": 50,
		"flow-control-bytes-total": 500000,
		"log-level": "trace"
	}`), 0o600))

	config, err := getConfig(t, "--config-file="+configFile)
	require.NoError(err)
	require.EqualValues(50, config.FlowControlConfig.PeerFloodReadingCapacity)
	require.Equal(flowcontrol.DefaultPeerReadingCapacity, config.FlowControlConfig.PeerReadingCapacity)
	require.EqualValues(500_000, config.FlowControlConfig.BytesTotal)
	require.Equal(logging.Trace, config.LoggingConfig.LogLevel)
}

func TestBuildViperMissingConfigFile(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{
		"--config-file=" + filepath.Join(t.TempDir(), "missing.json"),
	})
	require.Error(t, err)
}

func TestBuildViperUnknownFlag(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{"--unknown-flag"})
	require.Error(t, err)
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name: "flood exceeds reading",
			args: []string{
				"--flow-control-peer-flood-reading-capacity=300",
			},
		},
		{
			name: "unsupported local version",
			args: []string{
				"--overlay-protocol-version=1",
			},
		},
		{
			name: "unsupported remote version",
			args: []string{
				"--remote-overlay-protocol-version=1",
			},
			expectedErr: errIncompatibleRemote,
		},
		{
			name: "negative message count",
			args: []string{
				"--simulate-messages=-1",
			},
			expectedErr: errNegativeSimulateMessages,
		},
		{
			name: "negative message size",
			args: []string{
				"--simulate-message-size=-1",
			},
			expectedErr: errNegativeMessageSize,
		},
		{
			name: "unknown log level",
			args: []string{
				"--log-level=loud",
			},
		},
		{
			name: "unknown log format",
			args: []string{
				"--log-format=xml",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := getConfig(t, test.args...)
			require.Error(t, err)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
			}
		})
	}
}
