// Package signals dispatches process signals to registered handlers:
// SIGHUP to reload handlers, SIGINT/SIGTERM to interrupt handlers.
package signals

import (
	"fmt"
	"os"
	"sync"
)

// sigChan is buffered to avoid missing signals delivered while no receiver is ready.
var sigChan = make(chan os.Signal, 1)

// Handler is a function called when a signal is received.
type Handler func()

// HandlerID identifies a registered handler for deregistration.
type HandlerID int

type registeredHandler struct {
	id HandlerID
	fn Handler
}

var (
	mu           sync.RWMutex
	reloaders    []registeredHandler
	interrupters []registeredHandler
	nextID       HandlerID
	stopOnce     sync.Once
)

func register(list *[]registeredHandler, f Handler) HandlerID {
	if f == nil {
		return -1
	}
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	*list = append(*list, registeredHandler{id: id, fn: f})
	return id
}

func deregister(list *[]registeredHandler, id HandlerID) {
	mu.Lock()
	defer mu.Unlock()
	for i, h := range *list {
		if h.id == id {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return
		}
	}
}

// run calls a snapshot of handlers in registration order. A panicking handler
// does not stop the others.
func run(kind string, list *[]registeredHandler) {
	mu.RLock()
	snapshot := make([]registeredHandler, len(*list))
	copy(snapshot, *list)
	mu.RUnlock()
	for _, h := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "signals: panic in %s handler: %v\n", kind, r)
				}
			}()
			h.fn()
		}()
	}
}

// RegisterReloadHandler registers a handler called on SIGHUP. Nil handlers
// are ignored and return -1.
func RegisterReloadHandler(f Handler) HandlerID {
	return register(&reloaders, f)
}

// DeregisterReloadHandler removes a reload handler by ID.
func DeregisterReloadHandler(id HandlerID) {
	deregister(&reloaders, id)
}

// RegisterInterruptHandler registers a handler called on SIGINT/SIGTERM. Nil
// handlers are ignored and return -1.
func RegisterInterruptHandler(f Handler) HandlerID {
	return register(&interrupters, f)
}

// DeregisterInterruptHandler removes an interrupt handler by ID.
func DeregisterInterruptHandler(id HandlerID) {
	deregister(&interrupters, id)
}

// Reload runs the reload handlers as if SIGHUP had arrived.
func Reload() {
	run("reload", &reloaders)
}

// Interrupt runs the interrupt handlers as if SIGINT had arrived.
func Interrupt() {
	run("interrupt", &interrupters)
}

// StopHandle closes the signal channel, causing Handle() to return.
// Safe to call multiple times; only the first call takes effect.
func StopHandle() {
	stopOnce.Do(func() {
		stopNotify()
		close(sigChan)
	})
}
