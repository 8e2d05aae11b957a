package configs

import (
	"log"
	"os"
	"path/filepath"
)

type Settings struct {
	// ParamsPath is the JSON parameter document.
	ParamsPath string
	// SecretsPath is the encrypted secrets file.
	SecretsPath string
	// KeyPath is the local key file. Its presence short-circuits the
	// passphrase prompt.
	KeyPath string
	// SessionLogPath receives an uncolored copy of all log output.
	SessionLogPath string
	// ConfirmPassphrase requires re-entry when a new passphrase is set.
	ConfirmPassphrase bool
}

var AppSettings *Settings

// fileSettings is the shape of the optional settings.toml overrides.
type fileSettings struct {
	ParamsPath        string `toml:"params_path"`
	SecretsPath       string `toml:"secrets_path"`
	KeyPath           string `toml:"key_path"`
	SessionLogPath    string `toml:"session_log_path"`
	ConfirmPassphrase *bool  `toml:"confirm_passphrase"`
}

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	AppSettings = &Settings{
		ParamsPath:        filepath.Join(configDir, "dlmm-checker", "params.json"),
		SecretsPath:       filepath.Join(dataDir, "dlmm-checker", "secrets.json"),
		KeyPath:           filepath.Join(dataDir, "dlmm-checker", "key"),
		SessionLogPath:    filepath.Join(dataDir, "dlmm-checker", "session.log"),
		ConfirmPassphrase: true,
	}

	applySettingsFile(filepath.Join(configDir, "dlmm-checker", "settings.toml"))
}

// applySettingsFile overlays settings.toml onto the defaults. A missing or
// unreadable file leaves the defaults in place.
func applySettingsFile(path string) {
	var fs fileSettings
	if err := LoadTOML(path, &fs); err != nil {
		return
	}
	if fs.ParamsPath != "" {
		AppSettings.ParamsPath = fs.ParamsPath
	}
	if fs.SecretsPath != "" {
		AppSettings.SecretsPath = fs.SecretsPath
	}
	if fs.KeyPath != "" {
		AppSettings.KeyPath = fs.KeyPath
	}
	if fs.SessionLogPath != "" {
		AppSettings.SessionLogPath = fs.SessionLogPath
	}
	if fs.ConfirmPassphrase != nil {
		AppSettings.ConfirmPassphrase = *fs.ConfirmPassphrase
	}
}
