package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "turbinewash"
	DefaultConfigName = "turbinewash"
	DefaultConfigFile = DefaultConfigName + ".yaml"
	DefaultLogName    = "turbinewash.log"
	EnvPrefix         = "turbinewash"
)

type Config struct {
	// FadeDelayMs is how long a switcher image stays faded out before the next one is shown.
	FadeDelayMs int `mapstructure:"fade_delay_ms"`
	// BackToTopRows is how far the page must be scrolled before the back to top control appears.
	BackToTopRows int `mapstructure:"back_to_top_rows"`
	// MarkdownStyle is a glamour standard style, or auto to follow the terminal background.
	MarkdownStyle string `mapstructure:"markdown_style"`
	// WordWrap caps the document width. Zero follows the window.
	WordWrap int  `mapstructure:"word_wrap"`
	Mouse    bool `mapstructure:"mouse"`
	FPS      int  `mapstructure:"fps"`
	// ContentPath points at an alternate content document, the embedded one is used when empty.
	ContentPath string `mapstructure:"content_path"`
	Debug       bool   `mapstructure:"debug"`
}

func (c Config) FadeDelay() time.Duration {
	return time.Duration(c.FadeDelayMs) * time.Millisecond
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
