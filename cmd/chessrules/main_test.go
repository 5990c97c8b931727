package main

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func TestExecute_ClosesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	defer saveRestoreString(outputFile, path)()

	cfg := config.NewConfig()
	cfg.LogFile = io.Discard
	if code := execute(cfg); code != 0 {
		t.Fatalf("execute() = %d; want 0", code)
	}

	file, ok := cfg.OutputFile.(*os.File)
	if !ok {
		t.Fatalf("OutputFile is %T; want *os.File", cfg.OutputFile)
	}
	if _, err := file.Write([]byte("x")); !stderrors.Is(err, os.ErrClosed) {
		t.Errorf("write after execute: %v; want os.ErrClosed", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "To move:  white\n") {
		t.Errorf("report not written:\n%s", data)
	}
}

func TestExecute_ClosesLogFileOnError(t *testing.T) {
	dir := t.TempDir()
	defer saveRestoreString(logFile, filepath.Join(dir, "chessrules.log"))()
	defer saveRestoreString(outputFile, filepath.Join(dir, "missing", "report.txt"))()

	cfg := config.NewConfig()
	if code := execute(cfg); code != 1 {
		t.Fatalf("execute() = %d; want 1", code)
	}

	file, ok := cfg.LogFile.(*os.File)
	if !ok {
		t.Fatalf("LogFile is %T; want *os.File", cfg.LogFile)
	}
	if _, err := file.Write([]byte("x")); !stderrors.Is(err, os.ErrClosed) {
		t.Errorf("write after execute: %v; want os.ErrClosed", err)
	}
}

func TestExecute_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	defer saveRestoreString(outputFile, path)()

	cfg := config.NewConfig()
	cfg.LogFile = io.Discard
	cfg.Rules.RepetitionCount = 0
	if code := execute(cfg); code != 2 {
		t.Errorf("execute() = %d; want 2", code)
	}
	if _, err := cfg.OutputFile.(*os.File).Write([]byte("x")); !stderrors.Is(err, os.ErrClosed) {
		t.Errorf("write after execute: %v; want os.ErrClosed", err)
	}
}
