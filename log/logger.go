package log

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

var logrusLevels = map[Level]logrus.Level{
	LevelTrace: logrus.TraceLevel,
	LevelDebug: logrus.DebugLevel,
	LevelInfo:  logrus.InfoLevel,
	LevelWarn:  logrus.WarnLevel,
	LevelError: logrus.ErrorLevel,
	LevelFatal: logrus.PanicLevel,
}

func NewLevel(l string) (Level, error) {
	l = strings.ToLower(strings.TrimSpace(l))
	for level, name := range levelNames {
		if name == l {
			return level, nil
		}
	}
	return LevelTrace, errors.Errorf("invalid log level %q", l)
}

func (l Level) String() string {
	name, ok := levelNames[l]
	if !ok {
		panic("invalid level")
	}
	return name
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

var currLevel = LevelInfo

var backend = newBackend()

var rootLogger = &logrusLogger{
	backend: backend,
}

type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

func newBackend() *logrus.Logger {
	lgr := logrus.New()
	lgr.SetOutput(os.Stderr)
	return lgr
}

func SetLevel(level Level) {
	currLevel = level
	backend.SetLevel(logrusLevels[level])
}

// SetOutput redirects every logger, including ones already created with
// WithModule.
func SetOutput(w io.Writer) {
	backend.SetOutput(w)
}

// SetFormat selects text or JSON output.
func SetFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		backend.SetFormatter(&logrus.TextFormatter{})
	case FormatJSON:
		backend.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid log format %q", format)
	}
	return nil
}

func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
