package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/limbo/timetrack/pkg/cleanup"
	"github.com/limbo/timetrack/pkg/config"
	"github.com/limbo/timetrack/pkg/logger"
)

var CLI struct {
	LogLevel string `help:"Log level." default:"info" env:"LOG_LEVEL"`

	Migrate  MigrateCmd  `cmd:"" help:"Apply database migrations."`
	Populate PopulateCmd `cmd:"" help:"Create the day's tasks from active habit templates."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ttctl"),
		kong.Description("Maintenance tool for the timetrack API"),
		kong.UsageOnError(),
	)
	logger.Init(logger.Config{Level: CLI.LogLevel})

	err := ctx.Run(&appContext{cfg: config.New()})
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
