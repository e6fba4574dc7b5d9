package main

import (
	"errors"
	"os"

	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/signals"
	"github.com/jonboulle/clockwork"
)

var log = logger.GetLogger()

func main() {
	go signals.Handle()
	root := newRootCommand(clockwork.NewRealClock())
	err := root.Execute()
	signals.StopHandle()
	if err != nil {
		log.WithError(err).Debug("command failed")
		if errors.Is(err, errBackwardJumps) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
