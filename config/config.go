// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ava-labs/flowcontrol/network/flowcontrol"
	"github.com/ava-labs/flowcontrol/utils/logging"
	"github.com/ava-labs/flowcontrol/version"
)

var (
	errNegativeSimulateMessages = errors.New("simulated message count must not be negative")
	errNegativeMessageSize      = errors.New("simulated message size must not be negative")
	errIncompatibleRemote       = errors.New("remote overlay protocol version is not supported")
)

// Config is the complete configuration of the flowcontrol binary
type Config struct {
	LoggingConfig     logging.Config     `json:"loggingConfig"`
	FlowControlConfig flowcontrol.Config `json:"flowControlConfig"`
	MetricsNamespace  string             `json:"metricsNamespace"`
	SimulationConfig  SimulationConfig   `json:"simulationConfig"`
}

// SimulationConfig describes the scripted peer driven by the binary
type SimulationConfig struct {
	Messages                     int    `json:"messages"`
	MessageSize                  int    `json:"messageSize"`
	TxSizeIncrease               uint32 `json:"txSizeIncrease"`
	RemoteOverlayProtocolVersion uint32 `json:"remoteOverlayProtocolVersion"`
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogDisplayLevelKey)
	if logDisplayLevel == "" {
		logDisplayLevel = v.GetString(LogLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = v.GetInt(LogRotaterMaxSize)
	loggingConfig.MaxFiles = v.GetInt(LogRotaterMaxFiles)
	loggingConfig.MaxAge = v.GetInt(LogRotaterMaxAge)
	loggingConfig.Compress = v.GetBool(LogRotaterCompress)
	return loggingConfig, nil
}

func getFlowControlConfig(v *viper.Viper) (flowcontrol.Config, error) {
	config := flowcontrol.Config{
		PeerFloodReadingCapacity: v.GetUint64(FlowControlPeerFloodReadingCapacityKey),
		PeerReadingCapacity:      v.GetUint64(FlowControlPeerReadingCapacityKey),
		BytesTotal:               v.GetUint64(FlowControlBytesTotalKey),
		MaxTxSize:                v.GetUint32(FlowControlMaxTxSizeKey),
		OverlayProtocolVersion:   v.GetUint32(OverlayProtocolVersionKey),
	}
	return config, config.Verify()
}

func getSimulationConfig(v *viper.Viper) (SimulationConfig, error) {
	config := SimulationConfig{
		Messages:                     v.GetInt(SimulateMessagesKey),
		MessageSize:                  v.GetInt(SimulateMessageSizeKey),
		TxSizeIncrease:               v.GetUint32(SimulateTxSizeIncreaseKey),
		RemoteOverlayProtocolVersion: v.GetUint32(RemoteOverlayProtocolVersionKey),
	}
	switch {
	case config.Messages < 0:
		return config, fmt.Errorf("%w: %d", errNegativeSimulateMessages, config.Messages)
	case config.MessageSize < 0:
		return config, fmt.Errorf("%w: %d", errNegativeMessageSize, config.MessageSize)
	}
	if err := version.Compatible(config.RemoteOverlayProtocolVersion); err != nil {
		return config, fmt.Errorf("%w: %w", errIncompatibleRemote, err)
	}
	return config, nil
}

// GetConfig builds the binary configuration from the values defined in [v]
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)
	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, fmt.Errorf("couldn't load logging config: %w", err)
	}

	config.FlowControlConfig, err = getFlowControlConfig(v)
	if err != nil {
		return Config{}, fmt.Errorf("invalid flow control config: %w", err)
	}

	config.MetricsNamespace = v.GetString(MetricsNamespaceKey)

	config.SimulationConfig, err = getSimulationConfig(v)
	if err != nil {
		return Config{}, fmt.Errorf("invalid simulation config: %w", err)
	}
	return config, nil
}
