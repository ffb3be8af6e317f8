package config

import (
	"os"
	"path/filepath"

	"github.com/kaspanet/txprim/infrastructure/logger"
)

const (
	defaultLogFilename    = "txprim.log"
	defaultErrLogFilename = "txprim_err.log"
)

// LogFlags holds the logging configuration shared by all commands.
type LogFlags struct {
	LogLevel logger.Level `long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}" default:"warn"`
	LogDir   string       `long:"logdir" description:"Directory to write rotated log files to; logs go to stderr only when empty"`
}

// InitLogging applies the log level to every subsystem and starts the logging
// backend, writing to stderr and, if LogDir is set, to rotated log files.
func (logFlags *LogFlags) InitLogging() error {
	logger.SetLogLevels(logFlags.LogLevel)

	err := logger.BackendLog.AddStreamWriter(os.Stderr, logFlags.LogLevel)
	if err != nil {
		return err
	}
	if logFlags.LogDir == "" {
		return logger.BackendLog.Run()
	}
	return logger.InitLog(filepath.Join(logFlags.LogDir, defaultLogFilename),
		filepath.Join(logFlags.LogDir, defaultErrLogFilename))
}
