package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	if filepath.Base(got) != "unipay.log" {
		t.Fatalf("unexpected default filename: %s", filepath.Base(got))
	}
	if filepath.Base(filepath.Dir(got)) != defaultLogDirName {
		t.Fatalf("unexpected default dir: %s", filepath.Dir(got))
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}

func TestResolveLogFilePathRejectsUnwritableDir(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "occupied")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker failed: %v", err)
	}

	// 目标目录位置被普通文件占用，MkdirAll 必须失败
	if _, err := resolveLogFilePath(Options{Dir: filepath.Join(blocker, "logs")}); err == nil {
		t.Fatalf("expected error for unwritable dir")
	}
}

func TestNewReleaseWritesRotatingFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{
		Dir:       tmpDir,
		Filename:  "unipay.log",
		MaxSizeMB: 1,
		Compress:  false,
	})
	log.Info("release_write_check")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "unipay.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	if !strings.Contains(string(content), "release_write_check") {
		t.Fatalf("expected message in log file, got: %s", string(content))
	}
	if !strings.Contains(string(content), `"message"`) {
		t.Fatalf("release log should be json encoded, got: %s", string(content))
	}
}

func TestNewDebugLogsToConsoleOnly(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "unipay.log"})
	log.Debug("debug_console_check")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "unipay.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode should not create log file")
	}
}

func TestNewFallsBackToStdoutOnBadDir(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "occupied")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker failed: %v", err)
	}

	log := New("release", Options{Dir: filepath.Join(blocker, "logs")})
	if log == nil {
		t.Fatalf("expected stdout fallback logger")
	}
	log.Info("fallback_write_check")
	_ = log.Sync()
}

func TestZReturnsFallbackWhenUninitialized(t *testing.T) {
	saved := L
	t.Cleanup(func() { L = saved })
	L = nil

	if Z() == nil {
		t.Fatalf("expected fallback logger instance")
	}
	if S() == nil {
		t.Fatalf("expected fallback sugared logger")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	cases := []struct {
		value    int
		fallback int
		expected int
	}{
		{0, defaultLogMaxSizeMB, defaultLogMaxSizeMB},
		{-1, defaultLogMaxBackups, defaultLogMaxBackups},
		{15, defaultLogMaxAgeDays, 15},
	}
	for _, tc := range cases {
		if got := normalizePositiveInt(tc.value, tc.fallback); got != tc.expected {
			t.Fatalf("value=%d expected %d, got %d", tc.value, tc.expected, got)
		}
	}
}
