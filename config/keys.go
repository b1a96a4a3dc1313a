// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"

	LogsDirKey         = "log-dir"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"
	LogRotaterMaxSize  = "log-rotater-max-size"
	LogRotaterMaxFiles = "log-rotater-max-files"
	LogRotaterMaxAge   = "log-rotater-max-age"
	LogRotaterCompress = "log-rotater-compress-enabled"

	FlowControlPeerFloodReadingCapacityKey = "flow-control-peer-flood-reading-capacity"
	FlowControlPeerReadingCapacityKey      = "flow-control-peer-reading-capacity"
	FlowControlBytesTotalKey               = "flow-control-bytes-total"
	FlowControlMaxTxSizeKey                = "flow-control-max-tx-size"
	OverlayProtocolVersionKey              = "overlay-protocol-version"

	MetricsNamespaceKey = "metrics-namespace"

	SimulateMessagesKey             = "simulate-messages"
	SimulateMessageSizeKey          = "simulate-message-size"
	SimulateTxSizeIncreaseKey       = "simulate-tx-size-increase"
	RemoteOverlayProtocolVersionKey = "remote-overlay-protocol-version"
)
