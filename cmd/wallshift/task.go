package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/wallshift/wallshift/internal/logging"
	"github.com/wallshift/wallshift/internal/task"
)

func install(c *cli.Context) error {
	logger := logging.GetLogger("install")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	fsys := afero.NewOsFs()

	// Scheduled runs start from an arbitrary working directory, so freeze
	// the profile argument to an absolute path now.
	profile := c.Args().First()
	if profile != "" {
		if profile, err = cfg.ResolveProfile(fsys, profile); err != nil {
			return err
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating own executable: %w", err)
	}

	installer, err := task.NewInstaller(fsys)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()

	return installer.Install(ctx, task.Options{
		Executable: exe,
		Profile:    profile,
		Interval:   cfg.Task.Interval,
		LogonDelay: cfg.Task.LogonDelay,
	})
}

func uninstall(*cli.Context) error {
	logger := logging.GetLogger("uninstall")

	installer, err := task.NewInstaller(afero.NewOsFs())
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()

	return installer.Uninstall(ctx)
}

func status(*cli.Context) error {
	installer, err := task.NewInstaller(afero.NewOsFs())
	if err != nil {
		return err
	}
	installed, err := installer.Installed(context.Background())
	if err != nil {
		return err
	}
	if installed {
		fmt.Println("scheduled task: installed")
	} else {
		fmt.Println("scheduled task: not installed")
	}
	return nil
}
