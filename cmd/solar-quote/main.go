package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/solar-quote/internal/config"
	"github.com/iwvelando/solar-quote/internal/logging"
	"github.com/iwvelando/solar-quote/internal/proposal"
	"github.com/iwvelando/solar-quote/pkg/advice"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"github.com/iwvelando/solar-quote/pkg/output"
	"github.com/iwvelando/solar-quote/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	noAdvice := flag.Bool("no-advice", false, "skip the advisory text section")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *noAdvice {
		conf.Advice.Enabled = false
	}

	p, err := proposal.Generate(context.Background(), logger, conf, advice.Summary{})
	if err != nil {
		logger.Fatal("failed to generate proposal",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(p)
	case constants.OutputFormatCSV:
		output.CsvFormat(p)
	case constants.OutputFormatJSON:
		output.JSONFormat(p)
	}
}
