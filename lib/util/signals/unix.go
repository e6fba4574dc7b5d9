//go:build !windows

package signals

import (
	"os/signal"
	"syscall"
)

func init() {
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

func stopNotify() {
	signal.Stop(sigChan)
}

// Handle dispatches signals until StopHandle is called.
func Handle() {
	for sig := range sigChan {
		switch sig {
		case syscall.SIGHUP:
			Reload()
		case syscall.SIGINT, syscall.SIGTERM:
			Interrupt()
		}
	}
}
