// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"context"
	"strings"

	"github.com/hashgraph/solo-kmod/pkg/shell"
	"github.com/joomcode/errorx"
	"pault.ag/go/modprobe"
)

// LoaderKind selects the moduleLoader implementation.
type LoaderKind string

const (
	// LoaderExec runs the modprobe binary.
	LoaderExec LoaderKind = "exec"
	// LoaderNative calls finit_module/delete_module directly.
	LoaderNative LoaderKind = "native"
)

func AllLoaders() []LoaderKind {
	return []LoaderKind{LoaderExec, LoaderNative}
}

// ParseLoaderKind converts a configuration value into a LoaderKind.
func ParseLoaderKind(s string) (LoaderKind, error) {
	switch kind := LoaderKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "":
		return LoaderExec, nil
	case LoaderExec, LoaderNative:
		return kind, nil
	default:
		return "", errorx.IllegalArgument.New("unsupported module loader %q, expected one of %v", s, AllLoaders())
	}
}

func newLoader(kind LoaderKind, runner shell.Runner) (moduleLoader, error) {
	switch kind {
	case LoaderExec, "":
		return &execLoader{runner: runner}, nil
	case LoaderNative:
		return &nativeLoader{loadFn: modprobe.Load, removeFn: modprobe.Remove}, nil
	default:
		return nil, errorx.IllegalArgument.New("unsupported module loader %q, expected one of %v", kind, AllLoaders())
	}
}

// execLoader runs modprobe once, without retries.
type execLoader struct {
	runner shell.Runner
}

func (l *execLoader) load(ctx context.Context, name string) error {
	_, err := l.runner.Run(ctx, []string{"modprobe", name}, shell.Options{})
	return err
}

func (l *execLoader) unload(ctx context.Context, name string) error {
	_, err := l.runner.Run(ctx, []string{"modprobe", "-r", name}, shell.Options{})
	return err
}

// nativeLoader resolves and loads modules in-process. Its failures are reported as
// shell.ErrCommandExecution so callers handle both loaders the same way.
type nativeLoader struct {
	loadFn   func(module, params string) error
	removeFn func(name string) error
}

func (l *nativeLoader) load(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.loadFn(name, ""); err != nil {
		return shell.NewCommandError(err, "modprobe "+name, 1, err.Error())
	}
	return nil
}

func (l *nativeLoader) unload(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := l.removeFn(name); err != nil {
		return shell.NewCommandError(err, "modprobe -r "+name, 1, err.Error())
	}
	return nil
}
