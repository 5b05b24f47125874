package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/wallshift/wallshift/internal/config"
	"github.com/wallshift/wallshift/internal/constants"
	"github.com/wallshift/wallshift/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	settingsPath string
	logLevel     string
	verbose      bool
)

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "settings, s",
		Usage:       "path of the settings file",
		EnvVar:      constants.SettingsEnv,
		Destination: &settingsPath,
	},
	cli.StringFlag{
		Name:        "log-level, l",
		Usage:       "log level (trace, debug, info, warn, error)",
		Destination: &logLevel,
	},
	cli.BoolFlag{
		Name:        "verbose",
		Usage:       "verbose console output with caller information",
		Destination: &verbose,
	},
}

func main() {
	app := cli.NewApp()
	app.Name = constants.AppName
	app.HelpName = constants.AppName
	app.Usage = "applies the wallpaper your schedule picks for the current day and time"
	app.UsageText = constants.AppName + " [global options] <command> [profile]"
	app.Version = version
	app.Flags = globalFlags
	app.Before = setup
	app.Action = apply
	app.Commands = []cli.Command{
		{
			Name:      "apply",
			Usage:     "resolve today's theme and trigger, then set the wallpaper",
			UsageText: constants.AppName + " apply [profile]",
			Action:    apply,
		},
		{
			Name:      "resolve",
			Usage:     "print what apply would pick, without touching the wallpaper",
			UsageText: constants.AppName + " resolve [--json] [profile]",
			Action:    resolve,
			Flags:     resolveFlags,
		},
		{
			Name:      "validate",
			Usage:     "check the profile, every trigger document and every image",
			UsageText: constants.AppName + " validate [profile]",
			Action:    validate,
		},
		{
			Name:      "watch",
			Usage:     "stay in the foreground and re-apply on an interval",
			UsageText: constants.AppName + " watch [profile]",
			Action:    watch,
		},
		{
			Name:      "install",
			Usage:     "register apply with the OS task scheduler",
			UsageText: constants.AppName + " install [profile]",
			Action:    install,
		},
		{
			Name:   "uninstall",
			Usage:  "remove the scheduled task",
			Action: uninstall,
		},
		{
			Name:   "status",
			Usage:  "report whether the scheduled task is registered",
			Action: status,
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "print build information",
			Action:  printVersion,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.GetLogger("main").Fatal().Err(err).Msg("Command failed")
	}
}

// setup initializes logging from the global flags. It runs after flag
// parsing and before any command action.
func setup(*cli.Context) error {
	logging.Initialize(verbose)
	if logLevel != "" {
		logging.SetLogLevel(logLevel)
	}
	return nil
}

// loadSettings loads the application settings and applies its log level
// unless the flag already forced one
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(settingsPath)
	if err != nil {
		logging.GetLogger("main").Error().Err(err).Str("settings_path", settingsPath).Msg("Failed to load settings")
		return nil, err
	}
	if logLevel == "" {
		logging.SetLogLevel(cfg.Service.LogLevel)
	}
	return cfg, nil
}

func printVersion(*cli.Context) error {
	fmt.Printf("%s %s (%s_%s)\nBuild: %s commit=%s\n",
		constants.AppName, version, runtime.GOOS, runtime.GOARCH, date, commit)
	return nil
}
