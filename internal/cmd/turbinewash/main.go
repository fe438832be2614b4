package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/turbinewash/internal/config"
	"github.com/leighmacdonald/turbinewash/internal/content"
	"github.com/leighmacdonald/turbinewash/internal/render"
	"github.com/leighmacdonald/turbinewash/internal/switcher"
	"github.com/leighmacdonald/turbinewash/internal/ui"
	"github.com/leighmacdonald/turbinewash/internal/ui/pages"
	"github.com/spf13/cobra"
)

const defaultRenderWidth = 100

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	renderWidth    int
	renderStyle    string
	forceWrite     bool
	rootCmd        = &cobra.Command{
		Use:   "turbinewash",
		Short: "Gas turbine waterwashing guide",
		Long:  `turbinewash - An interactive terminal guide to gas turbine compressor waterwashing`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about turbinewash",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	renderCmd = &cobra.Command{
		Use:   "render <quadrant>",
		Short: "Print a quadrant's detail page",
		Long: "Render a quadrant's detail page to stdout. The quadrant is named by id " +
			"(product, transport, storage, process) or by layout (online, offline, chemical, deionised).",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"product", "transport", "storage", "process", "online", "offline", "chemical", "deionised"},
		RunE:      renderPage,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	configInitCmd = &cobra.Command{
		Use:               "init",
		Short:             "Write a config file listing every key, defaults fill in anything unset",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              configInit,
	}
)

var (
	errApp        = errors.New("application error")
	errConfigFile = errors.New("config file already exists, use --force to overwrite")
)

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path (default searches $XDG_CONFIG_HOME/turbinewash and the working directory)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Page width, defaults to word_wrap or 100")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "Markdown style, defaults to markdown_style")
	configInitCmd.Flags().BoolVar(&forceWrite, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(versionCmd, renderCmd, configCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("turbinewash - Gas turbine waterwashing guide\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                    //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                     //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                       //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)                //nolint:forbidigo
}

// run is the main entry point of turbinewash.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config, 1)

	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	logLevel := slog.LevelInfo
	if userConfig.Debug {
		logLevel = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, logLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting turbinewash", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", configLoader.Path()))

	store, errStore := content.Load(userConfig.ContentPath)
	if errStore != nil {
		return errors.Join(errStore, errApp)
	}

	configLoader.Watch()

	app := NewApp(userConfig, configUpdates)
	app.createUI(cmd.Context(), store, ui.Options{
		Build:      pages.BuildInfo{Version: BuildVersion, Date: BuildDate, Commit: BuildCommit},
		ConfigPath: configLoader.Path(),
		LogPath:    path.Join(xdg.ConfigHome, config.ConfigDirName, config.DefaultLogName),
	})

	if err := app.Start(cmd.Context()); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// renderPage prints a detail page without starting the ui. The image switcher shows its first image.
func renderPage(cmd *cobra.Command, args []string) error {
	userConfig, errConfig := config.NewLoader(nil, cfgFile).Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	store, errStore := content.Load(userConfig.ContentPath)
	if errStore != nil {
		return errors.Join(errStore, errApp)
	}

	quadrant, errQuadrant := resolveQuadrant(store, args[0])
	if errQuadrant != nil {
		return errQuadrant
	}

	width := renderWidth
	if width <= 0 {
		width = userConfig.WordWrap
	}

	if width <= 0 {
		width = defaultRenderWidth
	}

	style := renderStyle
	if style == "" {
		style = userConfig.MarkdownStyle
	}

	renderer, errRenderer := render.New(store, render.Options{Width: width, Style: style})
	if errRenderer != nil {
		return errors.Join(errRenderer, errApp)
	}

	page, errPage := renderer.Render(quadrant)
	if errPage != nil {
		return errors.Join(errPage, errApp)
	}

	var switcherView render.SwitcherView
	if page.HasSwitcher() {
		images := switcher.New(page.Detail.Switcher.Slots, switcher.Options{})
		switcherView = func(width int) string {
			return render.Switcher(images, width, nil)
		}
	}

	_, errWrite := fmt.Fprintln(cmd.OutOrStdout(), page.Layout(switcherView).Body)

	return errWrite
}

// resolveQuadrant accepts either a quadrant id or the name of the layout it uses.
func resolveQuadrant(store *content.Store, name string) (content.QuadrantID, error) {
	quadrant, errQuadrant := content.ParseQuadrantID(name)
	if errQuadrant == nil {
		return quadrant, nil
	}

	for _, entry := range store.Entries() {
		if detail, found := store.Detail(entry.ID); found && string(detail.Component) == name {
			return entry.ID, nil
		}
	}

	return "", errQuadrant
}

func configInit(cmd *cobra.Command, _ []string) error {
	target := cfgFile
	if target == "" {
		target = config.Path(config.DefaultConfigFile)
	}

	if _, err := os.Stat(target); err == nil && !forceWrite {
		return fmt.Errorf("%w: %s", errConfigFile, target)
	}

	loader := config.NewLoader(nil, target)
	defaults, errRead := loader.Read()
	if errRead != nil {
		return errors.Join(errRead, errApp)
	}

	if err := loader.Write(defaults, target); err != nil {
		return errors.Join(err, errApp)
	}

	_, errWrite := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", target)

	return errWrite
}
