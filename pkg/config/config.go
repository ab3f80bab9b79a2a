package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the launcher needs to assemble the service
// registry and run the supervisor. Values come from launcher.yaml (optional),
// AGRIAID_* environment variables, or the defaults below.
type Config struct {
	BackendDir     string
	BackendPort    int
	BackendWorkers int

	FrontendDir  string
	FrontendPort int

	ModelServerCommand string
	ModelServerArgs    []string
	ModelServerPort    int

	ReadyTimeout time.Duration
	RestartPause time.Duration
	StopGrace    time.Duration

	LogDir string

	BrowserCommand string
	BrowserArgs    []string
}

// Load reads configuration from the given file, or from launcher.yaml in the
// working directory when path is empty. A missing default file is fine; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("backend.dir", "backend")
	v.SetDefault("backend.port", 8000)
	v.SetDefault("backend.workers", 4)
	v.SetDefault("frontend.dir", "frontend")
	v.SetDefault("frontend.port", 3000)
	v.SetDefault("model_server.command", []string{"ollama", "serve"})
	v.SetDefault("model_server.port", 11434)
	v.SetDefault("ready_timeout", "30s")
	v.SetDefault("restart_pause", "2s")
	v.SetDefault("stop_grace", "3s")
	v.SetDefault("log_dir", "logs")
	v.SetDefault("browser.command", defaultBrowserCommand())
	v.SetDefault("browser.args", []string{"--incognito"})

	v.SetEnvPrefix("AGRIAID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	} else {
		v.SetConfigName("launcher")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, err
			}
		}
	}

	modelCmd := v.GetStringSlice("model_server.command")
	if len(modelCmd) == 0 {
		return Config{}, errors.New("model_server.command must not be empty")
	}

	cfg := Config{
		BackendDir:         v.GetString("backend.dir"),
		BackendPort:        v.GetInt("backend.port"),
		BackendWorkers:     v.GetInt("backend.workers"),
		FrontendDir:        v.GetString("frontend.dir"),
		FrontendPort:       v.GetInt("frontend.port"),
		ModelServerCommand: modelCmd[0],
		ModelServerArgs:    modelCmd[1:],
		ModelServerPort:    v.GetInt("model_server.port"),
		ReadyTimeout:       v.GetDuration("ready_timeout"),
		RestartPause:       v.GetDuration("restart_pause"),
		StopGrace:          v.GetDuration("stop_grace"),
		LogDir:             v.GetString("log_dir"),
		BrowserCommand:     v.GetString("browser.command"),
		BrowserArgs:        v.GetStringSlice("browser.args"),
	}
	return cfg, nil
}

// BackendDocsURL is the backend's interactive API documentation page.
func (c Config) BackendDocsURL() string {
	return fmt.Sprintf("http://localhost:%d/docs", c.BackendPort)
}

// FrontendURL is the frontend's root page.
func (c Config) FrontendURL() string {
	return fmt.Sprintf("http://localhost:%d", c.FrontendPort)
}

func defaultBrowserCommand() string {
	if runtime.GOOS == "windows" {
		return "chrome"
	}
	return "google-chrome"
}
