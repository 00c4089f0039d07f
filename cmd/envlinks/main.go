package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/nestoca/envlinks/internal/actions"
	"github.com/nestoca/envlinks/internal/config"
)

// version represents the version of our built application.
// it will be set via ldflags during the build process.
var version string

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		if actions.IsRunning() {
			actions.Fail(os.Stdout, err)
		}
		os.Exit(1)
	}
}

func run() error {
	if version == "" {
		version = debugBuildVersion()
	}

	var configDir string
	flags := flag.NewFlagSet("root", flag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringVar(&configDir, "config-dir", "", "")
	_ = flags.Parse(os.Args[1:])

	rootCmd := NewRootCmd(version)
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	rootCmd.SetContext(config.ToContext(context.Background(), cfg))

	_, err = rootCmd.ExecuteC()
	return err
}

func debugBuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return info.Main.Version
}
