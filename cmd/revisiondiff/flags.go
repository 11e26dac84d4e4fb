package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	GlobalConfigFile string
	OldVersionID     int64
	NewVersionID     int64
	UserID           int64
	Format           string
	Granularity      string
	OutputFile       string
}

func ParseFlags() AppFlags {
	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	oldVersionID := flag.Int64("old", 0, "Id of the old (left) version to compare.")
	newVersionID := flag.Int64("new", 0, "Id of the new (right) version to compare.")
	userID := flag.Int64("user", 0, "Id of the requesting user for access policy checks.")

	format := flag.String("format", "", "Export format: html, json or pdf (overrides config default if set).")
	formatAlias := flag.String("f", "", "Alias for -format")

	granularity := flag.String("granularity", "", "Text diff granularity: line or raw (overrides config default if set).")
	granularityAlias := flag.String("g", "", "Alias for -granularity")

	outputFile := flag.String("out", "", "Output file path. Writes to stdout if not set.")
	outputFileAlias := flag.String("o", "", "Alias for -out")

	flag.Parse()

	flags := AppFlags{
		OldVersionID: *oldVersionID,
		NewVersionID: *newVersionID,
		UserID:       *userID,
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *format != "" {
		flags.Format = *format
	} else if *formatAlias != "" {
		flags.Format = *formatAlias
	}

	if *granularity != "" {
		flags.Granularity = *granularity
	} else if *granularityAlias != "" {
		flags.Granularity = *granularityAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if flags.OldVersionID == 0 || flags.NewVersionID == 0 {
		fmt.Fprintln(os.Stderr, "[FATAL] -old and -new version ids are required")
		os.Exit(1)
	}

	return flags
}
