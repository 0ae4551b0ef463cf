package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the iconserve binary
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver determines the executable and config locations once.
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin", "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "iconserve")
		}
		return filepath.Join(homeDir, ".config", "iconserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "iconserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "iconserve")
	default:
		return filepath.Join(homeDir, ".iconserve")
	}
}

// GetSnapshotPath resolves a catalog snapshot path. Relative paths are
// tried against the working directory first, then next to the executable,
// so both dev checkouts and installed deployments work.
func (pr *PathResolver) GetSnapshotPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if filepath.IsAbs(path) {
		if FileExists(path) {
			return path, nil
		}
		return "", fmt.Errorf("catalog snapshot not found at %s", path)
	}
	if FileExists(path) {
		return GetAbsolutePath(path), nil
	}
	candidate := filepath.Join(pr.executableDir, path)
	if FileExists(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf("catalog snapshot not found at %s or %s", path, candidate)
}

// GetConfigPath returns the path for a named config file, creating the
// config directory when needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if result := CheckDirStatus(pr.configDir); !result.Writable {
		log.Warnf("Config dir %s not writable, falling back to executable dir", pr.configDir)
		return filepath.Join(pr.executableDir, filename), nil
	}
	return filepath.Join(pr.configDir, filename), nil
}
