// SPDX-License-Identifier: Apache-2.0

package kernel

import "context"

// Identity is implemented by anything with a diagnosable identity.
type Identity interface {
	Name() string
	String() string
}

// Lifecycle defines the operations available on a managed kernel module.
type Lifecycle interface {
	Identity
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Running(ctx context.Context, wait bool) bool
	Version(ctx context.Context) string
	TargetVersion(ctx context.Context) VersionTuple
	Status(ctx context.Context) (*StatusReport, error)
}

// moduleLoader defines the low-level load/unload operations.
// This interface can be easily mocked for testing
type moduleLoader interface {
	load(ctx context.Context, name string) error
	unload(ctx context.Context, name string) error
}
