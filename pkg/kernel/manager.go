// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"context"
	"fmt"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/pkg/sanity"
	"github.com/hashgraph/solo-kmod/pkg/shell"
	"github.com/joomcode/errorx"
)

const (
	DefaultModuleName = "kvdo"
	DefaultTargetName = "vdo"

	// DefaultWaitAttempts is how many times each presence check is attempted when waiting
	// for a module that may still be initializing.
	DefaultWaitAttempts = 20
)

// StatusReport is the on-demand status of a managed module.
type StatusReport struct {
	Name               string `yaml:"Name" json:"Name"`
	Loaded             bool   `yaml:"Loaded" json:"Loaded"`
	VersionInformation any    `yaml:"Version information" json:"Version information"`
}

// Manager manages a single kernel module and its device-mapper target by invoking
// modprobe, modinfo, lsmod and dmsetup.
type Manager struct {
	name         string
	targetName   string
	waitAttempts int
	runner       shell.Runner
	loader       moduleLoader
}

var _ Lifecycle = (*Manager)(nil)

type settings struct {
	targetName   string
	waitAttempts int
	runner       shell.Runner
	loaderKind   LoaderKind
}

type Option func(*settings)

// WithTargetName sets the device-mapper target expected to be registered by the module.
func WithTargetName(target string) Option {
	return func(s *settings) {
		s.targetName = target
	}
}

// WithWaitAttempts sets the attempt count of each presence check when Running is asked to wait.
func WithWaitAttempts(n int) Option {
	return func(s *settings) {
		s.waitAttempts = n
	}
}

func WithRunner(r shell.Runner) Option {
	return func(s *settings) {
		s.runner = r
	}
}

// WithLoader selects how the module is loaded and unloaded.
func WithLoader(kind LoaderKind) Option {
	return func(s *settings) {
		s.loaderKind = kind
	}
}

// NewManager creates a Manager for the named kernel module.
func NewManager(name string, opts ...Option) (*Manager, error) {
	s := settings{
		targetName:   DefaultTargetName,
		waitAttempts: DefaultWaitAttempts,
		loaderKind:   LoaderExec,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := sanity.ValidateIdentifier(name); err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "invalid kernel module name: %q", name).
			WithProperty(ModuleNameProperty, name)
	}
	if err := sanity.ValidateIdentifier(s.targetName); err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "invalid device-mapper target name: %q", s.targetName)
	}
	if s.waitAttempts < 1 {
		return nil, errorx.IllegalArgument.New("wait attempts must be at least 1, got %d", s.waitAttempts)
	}
	if s.runner == nil {
		s.runner = shell.NewRunner()
	}

	loader, err := newLoader(s.loaderKind, s.runner)
	if err != nil {
		return nil, err
	}

	return &Manager{
		name:         name,
		targetName:   s.targetName,
		waitAttempts: s.waitAttempts,
		runner:       s.runner,
		loader:       loader,
	}, nil
}

func (m *Manager) Name() string {
	return m.name
}

func (m *Manager) TargetName() string {
	return m.targetName
}

func (m *Manager) String() string {
	return fmt.Sprintf("Manager{name: %s, targetName: %s, waitAttempts: %d}", m.name, m.targetName, m.waitAttempts)
}

// Running reports whether the module is loaded and its device-mapper target is registered.
// With wait set, each check is retried to ride out modules that are still initializing.
// Any failure is reported as not running.
func (m *Manager) Running(ctx context.Context, wait bool) bool {
	retries := 1
	if wait {
		retries = m.waitAttempts
	}
	opts := shell.Options{Shell: true, Retries: retries}

	if _, err := m.runner.Run(ctx, []string{"lsmod", "|", "grep", "-q", quote(m.name)}, opts); err != nil {
		logx.As().Debug().Err(err).Str("module", m.name).Msg("Kernel module is not loaded")
		return false
	}

	if _, err := m.runner.Run(ctx, []string{"dmsetup", "targets", "|", "grep", "-q", quote(m.targetName)}, opts); err != nil {
		logx.As().Debug().Err(err).Str("target", m.targetName).Msg("Device-mapper target is not registered")
		return false
	}

	return true
}

// Start loads the module. Loading an already loaded module succeeds.
func (m *Manager) Start(ctx context.Context) error {
	logx.As().Info().Str("module", m.name).Msg("Loading kernel module")
	if err := m.loader.load(ctx, m.name); err != nil {
		return err
	}

	logx.As().Info().Str("module", m.name).Msg("Kernel module loaded")
	return nil
}

// Stop unloads the module. It fails if the module is in use.
func (m *Manager) Stop(ctx context.Context) error {
	logx.As().Info().Str("module", m.name).Msg("Unloading kernel module")
	if err := m.loader.unload(ctx, m.name); err != nil {
		return err
	}

	logx.As().Info().Str("module", m.name).Msg("Kernel module unloaded")
	return nil
}

// Version returns the module name, a space and every modinfo line starting with "version".
func (m *Manager) Version(ctx context.Context) string {
	out, err := m.runner.Run(ctx, []string{"modinfo", m.name}, shell.Options{NoThrow: true})
	if err != nil {
		logx.As().Debug().Err(err).Str("module", m.name).Msg("Failed to query module information")
		out = ""
	}

	return m.name + " " + versionLines(out)
}

// TargetVersion returns the version of the device-mapper target, or the zero tuple if the
// target is not listed.
func (m *Manager) TargetVersion(ctx context.Context) VersionTuple {
	out, err := m.runner.Run(ctx, []string{"dmsetup", "targets"}, shell.Options{NoThrow: true})
	if err != nil {
		logx.As().Debug().Err(err).Msg("Failed to list device-mapper targets")
		return VersionTuple{}
	}

	return parseTargetVersion(out, m.targetName)
}

// Status reports the name, the loaded state without waiting, and the decoded version information.
func (m *Manager) Status(ctx context.Context) (*StatusReport, error) {
	loaded := m.Running(ctx, false)

	info, err := decodeVersionInfo(m.Version(ctx))
	if err != nil {
		return nil, err
	}

	return &StatusReport{
		Name:               m.name,
		Loaded:             loaded,
		VersionInformation: info,
	}, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
