package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	golog "github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

var (
	log  *Logger
	once sync.Once
)

type (
	Logger = golog.Logger
	Entry  = golog.Entry
	Fields = golog.Fields
	Level  = golog.Level
)

var (
	PanicLevel = golog.PanicLevel
	ErrorLevel = golog.ErrorLevel
	WarnLevel  = golog.WarnLevel
	InfoLevel  = golog.InfoLevel
	DebugLevel = golog.DebugLevel
)

// failFastHook exits after writing any warning or error. It is installed when
// WARNFAIL_TIMECONV is set.
type failFastHook struct{}

func (failFastHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel, logrus.WarnLevel}
}

func (failFastHook) Fire(e *logrus.Entry) error {
	if line, err := e.String(); err == nil {
		_, _ = io.WriteString(e.Logger.Out, line)
	}
	e.Logger.Exit(1)
	return nil
}

// InitializeLogger configures the shared go-i2p logger for this program.
// Output goes to stderr, since stdout carries command output, and stays
// discarded unless DEBUG_TIMECONV names a level. WARNFAIL_TIMECONV makes
// warnings and errors fatal and forces debug level.
func InitializeLogger() {
	once.Do(func() {
		log = golog.GetGoI2PLogger()
		if log.Out != io.Discard {
			log.SetOutput(os.Stderr)
		}
		logLevel := os.Getenv("DEBUG_TIMECONV")
		if logLevel == "" {
			return
		}
		if os.Getenv("WARNFAIL_TIMECONV") != "" {
			logLevel = "debug"
			log.AddHook(failFastHook{})
		}
		log.SetOutput(os.Stderr)
		switch strings.ToLower(logLevel) {
		case "warn":
			log.SetLevel(WarnLevel)
		case "error":
			log.SetLevel(ErrorLevel)
		default:
			log.SetLevel(DebugLevel)
		}
		log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
	})
}

// SetLevel enables logging to stderr at the named level ("debug", "info",
// "warn", "error"), or silences it with "off". An empty name leaves the
// environment-driven setting alone.
func SetLevel(name string) error {
	l := GetLogger()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return nil
	case "off", "none":
		l.SetOutput(io.Discard)
		l.SetLevel(PanicLevel)
		return nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return oops.
			Code("invalid_log_level").
			In("logger").
			With("level", name).
			Wrapf(err, "unknown log level %q", name)
	}
	l.SetOutput(os.Stderr)
	l.SetLevel(Level(level))
	return nil
}

// GetLogger returns the initialized Logger
func GetLogger() *Logger {
	InitializeLogger()
	return log
}

func init() {
	InitializeLogger()
}
