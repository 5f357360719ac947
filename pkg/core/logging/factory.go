// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     logging
// Description: Factory for loggers built from the log configuration
// Created:     2026-10-03
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnlog "github.com/msto63/commons/foundation/core/log"
	"github.com/msto63/commons/pkg/core/config"
)

// Factory creates loggers that share one Settings instance, output and CID source
type Factory struct {
	settings *cmnlog.Settings
	format   cmnlog.Format
	output   io.Writer
	writeMu  *sync.Mutex
	newCID   cmnlog.CIDGenerator
}

// NewFactory builds a factory from cfg. Additional writers receive a copy of
// every line.
func NewFactory(cfg config.LogConfig, additionalOutputs ...io.Writer) (*Factory, error) {
	level, err := cmnlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, cmnerror.IllegalArgument("invalid log level").WithCause(err)
	}

	format, err := cmnlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, cmnerror.IllegalArgument("invalid log format").WithCause(err)
	}

	output, err := outputWriter(cfg.Output)
	if err != nil {
		return nil, err
	}
	if len(additionalOutputs) > 0 {
		writers := append([]io.Writer{output}, additionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	newCID, err := cidGenerator(cfg.CIDSource, cfg.CIDLength)
	if err != nil {
		return nil, err
	}

	return &Factory{
		settings: cmnlog.NewSettings(level),
		format:   format,
		output:   output,
		writeMu:  &sync.Mutex{},
		newCID:   newCID,
	}, nil
}

// NewDefaultFactory builds a factory from the default log configuration
func NewDefaultFactory() *Factory {
	factory, err := NewFactory(config.Default().Log)
	if err != nil {
		panic(err)
	}
	return factory
}

// Logger creates a logger for context bound to the factory's settings
func (f *Factory) Logger(context string) *cmnlog.Logger {
	return cmnlog.New(context,
		cmnlog.WithSettings(f.settings),
		cmnlog.WithFormat(f.format),
		cmnlog.WithOutput(f.output),
		cmnlog.WithWriteLock(f.writeMu),
		cmnlog.WithCIDGenerator(f.newCID),
	)
}

// Settings returns the settings shared by every logger of this factory
func (f *Factory) Settings() *cmnlog.Settings {
	return f.settings
}

// SetLevel changes the default level of every logger without an override
func (f *Factory) SetLevel(level cmnlog.Level) {
	f.settings.SetDefaultLevel(level)
}

func outputWriter(output string) (io.Writer, error) {
	switch output {
	case "", config.OutputStdout:
		return os.Stdout, nil
	case config.OutputStderr:
		return os.Stderr, nil
	default:
		return nil, cmnerror.IllegalArgument("unsupported log output " + output)
	}
}

func cidGenerator(source string, length int) (cmnlog.CIDGenerator, error) {
	switch source {
	case "", config.CIDSourceRandom:
		return cmnlog.RandomCID(length), nil
	case config.CIDSourceAlphanumeric:
		return cmnlog.AlphanumericCID(length), nil
	case config.CIDSourceHex:
		return cmnlog.HexCID(length), nil
	case config.CIDSourceUUID:
		return cmnlog.UUIDCID, nil
	default:
		return nil, cmnerror.IllegalArgument("unsupported cid source " + source)
	}
}
