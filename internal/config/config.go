// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/hashgraph/solo-kmod/pkg/sanity"
	"github.com/hashgraph/solo-kmod/pkg/shell"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"
)

const EnvPrefix = "KMOD"

const (
	DefaultLockFile    = "/run/lock/kmod.lock"
	DefaultLockTimeout = 30 * time.Second
)

// Config holds the global configuration for the application.
type Config struct {
	Log    logx.LoggingConfig `yaml:"log" json:"log"`
	Module ModuleConfig       `yaml:"module" json:"module"`
}

// ModuleConfig represents the `module` configuration block.
type ModuleConfig struct {
	Name         string        `yaml:"name" json:"name"`                 // kernel module to manage
	TargetName   string        `yaml:"targetName" json:"targetName"`     // device-mapper target registered by the module
	WaitAttempts int           `yaml:"waitAttempts" json:"waitAttempts"` // presence check attempts when waiting
	RetryDelay   time.Duration `yaml:"retryDelay" json:"retryDelay"`     // pause between attempts
	Loader       string        `yaml:"loader" json:"loader"`             // exec | native
	LockFile     string        `yaml:"lockFile" json:"lockFile"`         // serializes start/stop across processes
	LockTimeout  time.Duration `yaml:"lockTimeout" json:"lockTimeout"`
}

// Validate validates the module configuration before any command is run.
func (c *ModuleConfig) Validate() error {
	if err := sanity.ValidateIdentifier(c.Name); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid module name: %s", c.Name).
			WithProperty(errorx.PropertyPayload(), "module.name")
	}

	if err := sanity.ValidateIdentifier(c.TargetName); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid target name: %s", c.TargetName).
			WithProperty(errorx.PropertyPayload(), "module.targetName")
	}

	if c.WaitAttempts < 1 {
		return errorx.IllegalArgument.New("waitAttempts must be at least 1, got %d", c.WaitAttempts).
			WithProperty(errorx.PropertyPayload(), "module.waitAttempts")
	}

	if c.RetryDelay < 0 {
		return errorx.IllegalArgument.New("retryDelay cannot be negative: %s", c.RetryDelay).
			WithProperty(errorx.PropertyPayload(), "module.retryDelay")
	}

	if _, err := kernel.ParseLoaderKind(c.Loader); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid loader: %s", c.Loader).
			WithProperty(errorx.PropertyPayload(), "module.loader")
	}

	if _, err := sanity.SanitizePath(c.LockFile); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid lock file path: %s", c.LockFile).
			WithProperty(errorx.PropertyPayload(), "module.lockFile")
	}

	if c.LockTimeout <= 0 {
		return errorx.IllegalArgument.New("lockTimeout must be positive, got %s", c.LockTimeout).
			WithProperty(errorx.PropertyPayload(), "module.lockTimeout")
	}

	return nil
}

// Validate validates all configuration fields to ensure they are safe and secure.
func (c Config) Validate() error {
	return c.Module.Validate()
}

// ManagerOptions translates the module configuration into kernel.Manager options.
func (c *ModuleConfig) ManagerOptions() ([]kernel.Option, error) {
	kind, err := kernel.ParseLoaderKind(c.Loader)
	if err != nil {
		return nil, err
	}

	return []kernel.Option{
		kernel.WithTargetName(c.TargetName),
		kernel.WithWaitAttempts(c.WaitAttempts),
		kernel.WithLoader(kind),
		kernel.WithRunner(shell.NewRunner(shell.WithRetryDelay(c.RetryDelay))),
	}, nil
}

// NewManager builds the kernel.Manager described by the module configuration.
func (c *ModuleConfig) NewManager() (*kernel.Manager, error) {
	opts, err := c.ManagerOptions()
	if err != nil {
		return nil, err
	}

	return kernel.NewManager(c.Name, opts...)
}

func defaultConfig() Config {
	return Config{
		Log: logx.LoggingConfig{
			Level:          "Info",
			ConsoleLogging: true,
			FileLogging:    false,
		},
		Module: ModuleConfig{
			Name:         kernel.DefaultModuleName,
			TargetName:   kernel.DefaultTargetName,
			WaitAttempts: kernel.DefaultWaitAttempts,
			RetryDelay:   shell.DefaultRetryDelay,
			Loader:       string(kernel.LoaderExec),
			LockFile:     DefaultLockFile,
			LockTimeout:  DefaultLockTimeout,
		},
	}
}

// setDefaults registers every default with viper so that environment variables can
// override them even when no configuration file is given.
func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.consoleLogging", c.Log.ConsoleLogging)
	v.SetDefault("log.fileLogging", c.Log.FileLogging)

	v.SetDefault("module.name", c.Module.Name)
	v.SetDefault("module.targetName", c.Module.TargetName)
	v.SetDefault("module.waitAttempts", c.Module.WaitAttempts)
	v.SetDefault("module.retryDelay", c.Module.RetryDelay)
	v.SetDefault("module.loader", c.Module.Loader)
	v.SetDefault("module.lockFile", c.Module.LockFile)
	v.SetDefault("module.lockTimeout", c.Module.LockTimeout)
}

var globalConfig = defaultConfig()

// Initialize loads the configuration from the specified file and the environment.
//
// Parameters:
//   - path: The path to the configuration file. Empty means defaults and environment only.
//
// Returns:
//   - An error if the configuration cannot be loaded or is invalid.
func Initialize(path string) error {
	cfg := defaultConfig()

	viper.Reset()
	setDefaults(viper.GetViper(), cfg)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		err := viper.ReadInConfig()
		if err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
			WithProperty(errorx.PropertyPayload(), path)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	globalConfig = cfg
	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

func Set(c *Config) error {
	if c == nil {
		return errorx.IllegalArgument.New("config cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	globalConfig = *c
	return nil
}

// OverrideModuleConfig updates the module configuration with values given on the command line.
// Empty values are ignored.
func OverrideModuleConfig(name, targetName string) error {
	cfg := globalConfig
	if name != "" {
		cfg.Module.Name = name
	}
	if targetName != "" {
		cfg.Module.TargetName = targetName
	}

	return Set(&cfg)
}
