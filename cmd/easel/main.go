// cmd/easel/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/tovenaar/easel/internal/config"
	"github.com/tovenaar/easel/internal/console"
	"github.com/tovenaar/easel/internal/logger"
)

func main() {
	// --- Flag & config loading ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger initialization ---
	var logOut io.Writer
	var logFile *os.File
	switch cfg.Logger.LogFilePath {
	case "-":
		logOut = os.Stderr
	case "":
		cfg.Logger.LogFilePath = config.DefaultLogFileName
		fallthrough
	default:
		logFile, err = os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger.InitWithConfig(&cfg.Logger, logOut)

	logger.Infof("Starting %s...", config.AppName)

	var scriptPath string
	if len(args) > 0 {
		scriptPath = args[0]
		logger.Debugf("Script file specified: %s", scriptPath)
	}

	// --- Create and run the console ---
	shell := console.New(cfg, console.Options{
		Input:      os.Stdin,
		Output:     os.Stdout,
		ScriptPath: scriptPath,
		Batch:      *flags.Batch,
	})

	if err := shell.Run(); err != nil {
		logger.Errorf("Console exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
