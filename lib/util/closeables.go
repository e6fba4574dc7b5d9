package util

import (
	"io"
	"sync"
)

var (
	closeOnExit []io.Closer
	closeMutex  sync.Mutex
)

// RegisterCloser registers an io.Closer to be closed during shutdown.
// This function is thread-safe.
func RegisterCloser(c io.Closer) {
	closeMutex.Lock()
	defer closeMutex.Unlock()
	closeOnExit = append(closeOnExit, c)
	log.WithField("count", len(closeOnExit)).Debug("Registered closer")
}

// CloseAll closes all registered io.Closer instances and clears the list.
// This function is thread-safe.
func CloseAll() {
	closeMutex.Lock()
	closers := closeOnExit
	closeOnExit = nil
	closeMutex.Unlock()

	log.WithField("count", len(closers)).Debug("Closing all registered closers")
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.WithError(err).Warn("Error closing resource")
		}
	}
}
