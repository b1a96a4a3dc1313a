// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLogLevelFiltering(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("test", NewWrappedCore(Info, buf, JSON.Encoder()))

	log.Debug("hidden")
	require.Zero(buf.Len())

	log.Info("shown", zap.Uint64("amount", 7))
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), `"amount":7`)
	require.Contains(buf.String(), `"level":"INFO "`)

	require.False(log.Enabled(Debug))
	log.SetLevel(Verbo)
	require.True(log.Enabled(Debug))

	buf.Reset()
	log.Debug("now shown")
	require.Contains(buf.String(), "now shown")
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSON.Encoder()))
	child := log.With(zap.String("peer", "abc"))

	child.Warn("child message")
	require.Contains(buf.String(), `"peer":"abc"`)

	buf.Reset()
	log.Warn("parent message")
	require.NotContains(buf.String(), `"peer"`)
}

func TestLogFatalDoesNotExit(t *testing.T) {
	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, Plain.Encoder()))
	log.Fatal("still running")
	require.Contains(t, buf.String(), "FATAL")
}

func TestFactoryWritesFile(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()
	config.DisplayLevel = Off
	factory := NewFactory(config)

	log, err := factory.Make("flowcontrol")
	require.NoError(err)

	same, err := factory.Make("flowcontrol")
	require.NoError(err)
	require.Equal(log, same)

	log.Info("written to disk")
	factory.Close()

	contents, err := os.ReadFile(filepath.Join(config.Directory, "flowcontrol.log"))
	require.NoError(err)
	require.Contains(string(contents), "written to disk")
}

func TestNoLog(t *testing.T) {
	var log Logger = NoLog{}
	require.False(t, log.Enabled(Fatal))
	require.Equal(t, log, log.With(zap.Int("x", 1)))
}
