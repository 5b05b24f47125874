package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/wallshift/wallshift/internal/logging"
)

var resolveJSON bool

var resolveFlags = []cli.Flag{
	cli.BoolFlag{
		Name:        "json, j",
		Usage:       "machine-readable output",
		Destination: &resolveJSON,
	},
}

func resolve(c *cli.Context) error {
	logger := logging.GetLogger("resolve")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(cfg, c.Args().First(), false)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up the resolve pipeline")
		return err
	}

	sel, err := orch.Resolve(time.Now())
	if err != nil {
		return err
	}

	if resolveJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sel)
	}
	fmt.Printf("theme:   %s (%s)\n", sel.Theme, sel.Reason)
	fmt.Printf("trigger: %s\n", sel.Trigger)
	fmt.Printf("image:   %s\n", sel.Image)
	return nil
}

func validate(c *cli.Context) error {
	logger := logging.GetLogger("validate")

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	orch, err := newOrchestrator(cfg, c.Args().First(), false)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up validation")
		return err
	}

	if err := orch.Validate(); err != nil {
		return err
	}
	fmt.Println("configuration is valid")
	return nil
}
