package utils

import (
	"fmt"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"log"
)

type LogRotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// SetupLogger points the standard logger at a rotating log file. An empty
// path discards log output.
func SetupLogger(logFilePath string, rotation LogRotation) io.Closer {
	log.SetFlags(log.LstdFlags)

	if logFilePath == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil)
	}

	writer := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
	}

	log.SetOutput(writer)
	return writer
}

func ConsoleAndLogPrintf(format string, v ...any) {
	message := fmt.Sprintf(format, v...)
	fmt.Println(message)
	log.Println(message)
}
