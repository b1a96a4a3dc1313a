// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/flowcontrol/network/flowcontrol"
	"github.com/ava-labs/flowcontrol/version"
)

const appName = "flowcontrol"

// BuildFlagSet returns the complete set of flags for the flowcontrol binary
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)

	// Config
	fs.String(ConfigFileKey, "", "Specifies a config file")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "plain", "The structure of log format. Should be one of {plain, json}")
	fs.Int(LogRotaterMaxSize, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogRotaterMaxFiles, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Int(LogRotaterMaxAge, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompress, false, "Enables the compression of rotated log files through gzip")

	// Flow control
	fs.Uint64(FlowControlPeerFloodReadingCapacityKey, flowcontrol.DefaultPeerFloodReadingCapacity, "Number of flood messages a peer may have outstanding")
	fs.Uint64(FlowControlPeerReadingCapacityKey, flowcontrol.DefaultPeerReadingCapacity, "Number of messages of any kind a peer may have outstanding")
	fs.Uint64(FlowControlBytesTotalKey, flowcontrol.DefaultBytesTotal, "Number of bytes of flood messages a peer may have outstanding")
	fs.Uint32(FlowControlMaxTxSizeKey, flowcontrol.DefaultMaxTxSize, "Size in bytes of the largest transaction the network accepts")
	fs.Uint32(OverlayProtocolVersionKey, version.Current, "Overlay protocol version spoken by this node")

	// Metrics
	fs.String(MetricsNamespaceKey, "flow_control", "Namespace of the flow control metrics")

	// Simulation
	fs.Int(SimulateMessagesKey, 250, "Number of flood messages the simulated peer sends")
	fs.Int(SimulateMessageSizeKey, 1024, "Payload size in bytes of each simulated message")
	fs.Uint32(SimulateTxSizeIncreaseKey, 0, "Bytes the maximum transaction size grows by half way through the simulation")
	fs.Uint32(RemoteOverlayProtocolVersionKey, version.Current, "Overlay protocol version spoken by the simulated peer")

	return fs
}

// BuildViper returns the viper environment from parsing [args] with [fs] and
// from reading the config file, if one was specified.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
