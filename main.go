package main

import (
	"dedup-tools/config"
	"dedup-tools/utils"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

//goland:noinspection GoUnnecessarilyExportedIdentifiers
var AppVersion = "1.0"

var usageText = `Usage: ./dedup-tools command.
Available commands:
  scan <job name> <index name> <scan path>
  duplicates <job name> <scan path>
  compare <job name> <source path> <target path>
  existence <job name> <output name> <source index> <target index>
  scans
`

//go:embed config.yaml
var defaultConfigData []byte

func main() {
	c, err := config.Load(defaultConfigData)

	if err != nil {
		log.Fatal(err)
	}

	logFile := utils.SetupLogger(c.LogFilePath, utils.LogRotation{
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	})

	defer logFile.Close()

	ctx := &Context{
		Config: c,
		DB:     initDb(c),
	}

	debugFormat := ""

	if c.IsDebug {
		debugFormat = " (debug)"
	}

	utils.ConsoleAndLogPrintf("Dedup Tools version %s%s. Hashing with %s, writing jobs to \"%s\"", AppVersion, debugFormat, c.HashAlgorithm, c.DataPath)
	startTime := time.Now()

	if len(os.Args) < 2 {
		utils.ConsoleAndLogPrintf("A command must be specified. %s", usageText)
		return
	}

	err = ctx.runCommand(strings.ToLower(os.Args[1]), os.Args[2:])

	if err != nil {
		utils.ConsoleAndLogPrintf("Error: %v", err)
	}

	utils.ConsoleAndLogPrintf("Finished in %s", utils.FormatDuration(time.Since(startTime)))

	if err != nil {
		logFile.Close()
		os.Exit(1)
	}
}

func (ctx *Context) runCommand(command string, args []string) error {
	switch command {
	case "scan":
		if len(args) != 3 {
			return fmt.Errorf("%w: scan requires a job name, an index name and a scan path", ErrMissingArguments)
		}

		return ctx.Scan(args[0], args[1], args[2])

	case "duplicates":
		if len(args) != 2 {
			return fmt.Errorf("%w: duplicates requires a job name and a scan path", ErrMissingArguments)
		}

		return ctx.FindDuplicates(args[0], args[1])

	case "compare":
		if len(args) != 3 {
			return fmt.Errorf("%w: compare requires a job name, a source path and a target path", ErrMissingArguments)
		}

		return ctx.Compare(args[0], args[1], args[2])

	case "existence":
		if len(args) != 4 {
			return fmt.Errorf("%w: existence requires a job name, an output name and two index names", ErrMissingArguments)
		}

		return ctx.CheckExistence(args[0], args[1], args[2], args[3])

	case "scans":
		return ctx.PrintScans()
	}

	return fmt.Errorf("%w: \"%s\". %s", ErrUnknownCommand, command, usageText)
}
