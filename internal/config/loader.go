package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader searches the config dir and the working directory, unless configFile names a file
// explicitly. Changes written to the file while running are sent to changes.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("fade_delay_ms", 150)
	loader.SetDefault("back_to_top_rows", 15)
	loader.SetDefault("markdown_style", "auto")
	loader.SetDefault("word_wrap", 0)
	loader.SetDefault("mouse", true)
	loader.SetDefault("fps", 60)
	loader.SetDefault("content_path", "")
	loader.SetDefault("debug", false)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts pushing reloaded configs to the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename && in.Op != fsnotify.Create {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes == nil {
		return
	}

	// Nobody may be listening any more once the ui has exited.
	select {
	case cl.changes <- config:
	default:
		slog.Warn("Dropped config reload, previous one still pending", slog.String("path", in.Name))
	}
}

// Write saves config to path, or to the file the config was read from when path is empty.
func (cl *Loader) Write(config Config, path string) error {
	cl.Set("fade_delay_ms", config.FadeDelayMs)
	cl.Set("back_to_top_rows", config.BackToTopRows)
	cl.Set("markdown_style", config.MarkdownStyle)
	cl.Set("word_wrap", config.WordWrap)
	cl.Set("mouse", config.Mouse)
	cl.Set("fps", config.FPS)
	cl.Set("content_path", config.ContentPath)
	cl.Set("debug", config.Debug)

	write := cl.WriteConfig
	if path != "" {
		write = func() error { return cl.WriteConfigAs(path) }
	}

	if err := write(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file when there is one. A missing file is not an error, the defaults and
// environment apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
