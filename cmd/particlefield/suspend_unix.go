//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// watchSuspend pauses p while the process is suspended with ctrl+z and
// resumes it on SIGCONT. It stops watching when ctx is done.
func watchSuspend(ctx context.Context, p pauser, log *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGTSTP, unix.SIGCONT)
	go func() {
		defer signal.Stop(sigCh)
		followSuspend(ctx, p, sigCh, func() {
			// SIGTSTP is caught here, so stop for real once the loops are idle.
			_ = unix.Kill(unix.Getpid(), unix.SIGSTOP)
		}, log)
	}()
}

func followSuspend(ctx context.Context, p pauser, sigs <-chan os.Signal, halt func(), log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigs:
			switch sig {
			case unix.SIGTSTP:
				p.Pause()
				log.Info("suspended, frame loops paused")
				halt()
			case unix.SIGCONT:
				p.Resume()
				log.Info("continued, frame loops resumed")
			}
		}
	}
}
