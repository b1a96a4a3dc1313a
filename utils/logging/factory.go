// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var _ Factory = (*factory)(nil)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type factory struct {
	config Config
	lock   sync.Mutex

	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured with
// the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]Logger),
	}
}

// Make creates a new logger with name [name]. Loggers are cached by name.
func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l, nil
	}

	consoleCore := NewWrappedCore(f.config.DisplayLevel, nopCloser{os.Stdout}, f.config.LogFormat.Encoder())
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	if f.config.Directory != "" {
		if err := os.MkdirAll(f.config.Directory, 0o750); err != nil {
			return nil, fmt.Errorf("couldn't create log directory %q: %w", f.config.Directory, err)
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(f.config.Directory, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxBackups: f.config.MaxFiles,
			MaxAge:     f.config.MaxAge,
			Compress:   f.config.Compress,
		}
		cores = append(cores, NewWrappedCore(f.config.LogLevel, rw, JSON.Encoder()))
	}

	l := NewLogger(name, cores...)
	f.loggers[name] = l
	return l, nil
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, l := range f.loggers {
		l.Stop()
	}
	f.loggers = make(map[string]Logger)
}

// stdout must never be closed by a logger
type nopCloser struct {
	*os.File
}

func (nopCloser) Close() error {
	return nil
}
