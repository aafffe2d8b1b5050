// Package logutil provides the debug loggers used across the codebase.
// Loggers are silent by default; pass -log to write them to a file.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger
// to the new writer. If the previous output was a file opened by
// SetOutputFile, it is closed.
func SetOutput(newout io.Writer) {
	closeOutFile()
	out = newout
	outFile = nil
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers obtained with
// GetLogger to the named file, opened for appending. An empty name
// restores the silent default.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %v: %v", fname, err)
	}
	closeOutFile()
	out = file
	outFile = file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
	}
}
