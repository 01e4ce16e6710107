//go:build !unix

package main

import (
	"context"

	"go.uber.org/zap"
)

func watchSuspend(context.Context, pauser, *zap.Logger) {}
