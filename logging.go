package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

// setupLogging points the standard logger at path after shifting earlier runs
// to path.1 ... path.<backups>; the oldest one falls off. With a non-nil echo
// every line is written there as well. The caller closes the returned file.
func setupLogging(path string, backups int, echo io.Writer) (*os.File, error) {
	if path == "" {
		return nil, errors.New("log file path is empty")
	}

	if err := rotateLogs(path, backups); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	if echo != nil {
		log.SetOutput(io.MultiWriter(f, echo))
	} else {
		log.SetOutput(f)
	}
	return f, nil
}

// rotateLogs renames path.(n-1) to path.n from the oldest down, then path to
// path.1. backups <= 0 keeps no history.
func rotateLogs(path string, backups int) error {
	if backups <= 0 {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove old log: %w", err)
		}
		return nil
	}

	_ = os.Remove(backupName(path, backups))
	for n := backups; n > 1; n-- {
		if err := os.Rename(backupName(path, n-1), backupName(path, n)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to rotate log backup %d: %w", n-1, err)
		}
	}
	if err := os.Rename(path, backupName(path, 1)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to rotate existing log: %w", err)
	}
	return nil
}

func backupName(path string, n int) string {
	return fmt.Sprintf("%s.%d", path, n)
}
