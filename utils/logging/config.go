// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig configures the file output of a logger.
type RotatingWriterConfig struct {
	// Directory to write log files into. No files are written if empty.
	Directory string `json:"directory"`
	// MaxSize in megabytes of a log file before it is rotated
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to retain
	MaxFiles int `json:"maxFiles"`
	// MaxAge in days to retain rotated files
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LogFormat               Format `json:"logFormat"`
}

// DefaultConfig logs to the console only
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8, // MB
			MaxFiles: 7,
			MaxAge:   30,
		},
		LogLevel:     Info,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}
