// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands"
	"github.com/hashgraph/solo-kmod/internal/doctor"
)

func main() {
	traceId := uuid.NewString()
	ctx := context.WithValue(context.Background(), doctor.TraceIdKey, traceId)

	// interrupting a wait cancels the running command and releases the module lock
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
