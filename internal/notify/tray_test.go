package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"daydesk/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int {
	return m.pid
}

func (m *mockProcess) PPid() int {
	return 0
}

func (m *mockProcess) Executable() string {
	return m.executable
}

func TestGetTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	t.Run("default location", func(t *testing.T) {
		want := filepath.Join(tempDir, constants.TrayAppIdentifier)
		dir, err := GetTrayAppConfigDir()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if dir != want {
			t.Errorf("expected %s, got %s", want, dir)
		}
	})

	t.Run("custom lockfile dir from settings", func(t *testing.T) {
		trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
		if err := os.MkdirAll(trayConfigDir, 0755); err != nil {
			t.Fatal(err)
		}

		customDir := "/custom/daydesk/dir"
		settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
		if err := os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
			t.Fatal(err)
		}

		dir, err := GetTrayAppConfigDir()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if dir != customDir {
			t.Errorf("expected %s, got %s", customDir, dir)
		}
	})
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	writeLockfile := func(t *testing.T, content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("missing lockfile", func(t *testing.T) {
		_, _, err := findAndValidateTrayProcess(filepath.Join(tempDir, "nope.lock"))
		if err == nil {
			t.Error("expected error for missing lockfile")
		}
	})

	t.Run("malformed lockfile", func(t *testing.T) {
		writeLockfile(t, "justoneport")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for malformed lockfile")
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		writeLockfile(t, "99999|1234|secret")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for out-of-range port")
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		writeLockfile(t, "8080|1234| ")
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for empty secret")
		}
	})

	t.Run("process not running", func(t *testing.T) {
		writeLockfile(t, "8080|1234|secret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return nil, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for dead process")
		}
	})

	t.Run("wrong executable", func(t *testing.T) {
		writeLockfile(t, "8080|1234|secret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "some-other-app"}, nil
		}
		if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
			t.Error("expected error for a foreign process")
		}
	})

	t.Run("valid lockfile and process", func(t *testing.T) {
		writeLockfile(t, "8080|1234|topsecret")
		findProcessFunc = func(pid int) (ps.Process, error) {
			return &mockProcess{pid: pid, executable: "daydesk-tray"}, nil
		}
		port, secret, err := findAndValidateTrayProcess(lockfilePath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if port != "8080" {
			t.Errorf("port = %s, want 8080", port)
		}
		if secret != "topsecret" {
			t.Errorf("secret = %s, want topsecret", secret)
		}
	})
}
