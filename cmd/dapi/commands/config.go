// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/luxfi/dapi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Default configuration values.
const (
	DefaultLogLevel   = "info"
	DefaultMasternode = "127.0.0.1"
	DefaultTimeout    = 30 * time.Second
	DefaultConfigName = "dapi"
)

// CLIConfig contains the configuration of the dapi command. Every field can
// be set by flag or in [datadir]/dapi.toml (.json and .yaml also work).
type CLIConfig struct {
	// DataDir is the directory searched for the config file.
	DataDir string `mapstructure:"datadir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log"`

	// LogFile, when set, receives the log in JSON and is rotated.
	LogFile string `mapstructure:"log-file"`

	// Masternodes is the pool calls are spread over. With a single entry the
	// client always talks to that node.
	Masternodes []string `mapstructure:"masternode"`

	// Rotate opens a fresh connection, possibly to another masternode, for
	// every call.
	Rotate bool `mapstructure:"rotate"`

	// Debug dumps JSON-RPC traffic to the log.
	Debug bool `mapstructure:"debug"`

	GRPCPort int `mapstructure:"grpc-port"`
	JRPCPort int `mapstructure:"jrpc-port"`

	// Timeout bounds a whole command.
	Timeout time.Duration `mapstructure:"timeout"`
}

// NewDefaultCLIConfig returns a config object with default values.
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		DataDir:     DefaultDataDir(),
		LogLevel:    DefaultLogLevel,
		Masternodes: []string{DefaultMasternode},
		Rotate:      true,
		GRPCPort:    dapi.DefaultGRPCPort,
		JRPCPort:    dapi.DefaultJRPCPort,
		Timeout:     DefaultTimeout,
	}
}

// DefaultDataDir is ~/.dapi, or the working directory when there is no home.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".dapi")
}

// addGlobalFlags registers the flags shared by every command.
func addGlobalFlags(cmd *cobra.Command, c *CLIConfig) {
	flags := cmd.PersistentFlags()
	flags.StringP("datadir", "d", c.DataDir, "Directory of the dapi config file")
	flags.String("log", c.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-file", c.LogFile, "Write the log to this file, rotated")
	flags.StringSliceP("masternode", "m", c.Masternodes, "Masternode host or host:grpcPort (repeatable)")
	flags.Bool("rotate", c.Rotate, "Use a fresh connection, possibly to another masternode, on every call")
	flags.Bool("debug", c.Debug, "Log JSON-RPC requests and responses")
	flags.Int("grpc-port", c.GRPCPort, "gRPC port of masternodes")
	flags.Int("jrpc-port", c.JRPCPort, "JSON-RPC port of masternodes")
	flags.DurationP("timeout", "t", c.Timeout, "Timeout of a command")
}

// loadConfig binds flags, then overlays the config file found in datadir.
func loadConfig(cmd *cobra.Command, c *CLIConfig) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	v.SetConfigName(DefaultConfigName)
	v.AddConfigPath(c.DataDir)

	configFile := ""
	if err := v.ReadInConfig(); err == nil {
		configFile = v.ConfigFileUsed()
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return err
	}

	// second unmarshal to read from config file
	if err := v.Unmarshal(c); err != nil {
		return err
	}

	if c.Debug && c.LogLevel != "debug" {
		c.LogLevel = "debug"
	}

	logger, err := newLogger(c.LogLevel, c.LogFile)
	if err != nil {
		return err
	}
	_logger = logger

	if configFile != "" {
		logger.Debug("using config file", zap.String("path", configFile))
	}
	logger.Debug("config",
		zap.String("datadir", c.DataDir),
		zap.Strings("masternodes", c.Masternodes),
		zap.Bool("rotate", c.Rotate),
		zap.Int("grpc-port", c.GRPCPort),
		zap.Int("jrpc-port", c.JRPCPort),
		zap.Duration("timeout", c.Timeout))
	return nil
}

// nodeProvider turns the configured masternodes into a provider.
func nodeProvider(c *CLIConfig) (dapi.NodeProvider, error) {
	if len(c.Masternodes) == 0 {
		return nil, dapi.ErrNoNodes
	}
	nodes := make([]dapi.NodeAddress, 0, len(c.Masternodes))
	for _, s := range c.Masternodes {
		addr, err := dapi.ParseNodeAddress(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, addr)
	}
	if len(nodes) == 1 {
		return dapi.FixedNode(nodes[0]), nil
	}
	return dapi.NewRotatingNodes(nodes, dapi.RandomSelector{})
}

func newClient(c *CLIConfig) (*dapi.Client, error) {
	provider, err := nodeProvider(c)
	if err != nil {
		return nil, err
	}
	return dapi.New(provider,
		dapi.WithRotation(c.Rotate),
		dapi.WithDebug(c.Debug),
		dapi.WithGRPCPort(c.GRPCPort),
		dapi.WithJRPCPort(c.JRPCPort),
		dapi.WithLogger(_logger),
	)
}
