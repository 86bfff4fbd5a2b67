package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/config"
	"github.com/iwvelando/college-roi/internal/server"
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/output"
	"github.com/iwvelando/college-roi/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// loadDotEnv loads .env from the working directory when one exists.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

func fatalf(msg string, err error) {
	fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q, \"error\": %q}\n", msg, fmt.Sprint(err))
	os.Exit(1)
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of printing a report")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if err := loadDotEnv(".env"); err != nil {
		fatalf("failed to load .env", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		configSet := false
		flag.Visit(func(f *flag.Flag) {
			if f.Name == "config" {
				configSet = true
			}
		})
		runServer(ctx, *serverConfigLocation, *configLocation, configSet, *logLevel)
		return
	}

	runReport(ctx, *configLocation, *outputFormatFlag, *logLevel)
}

func runReport(ctx context.Context, configLocation, outputFormatFlag, logLevel string) {
	conf, err := config.LoadConfiguration(configLocation)
	if err != nil {
		fatalf(fmt.Sprintf("failed to load configuration at %s", configLocation), err)
	}

	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		fatalf("failed to initialize logger", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if outputFormatFlag != "" {
		outputFormat = outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	selections := conf.ActiveSelections()
	if len(selections) == 0 {
		logger.Fatal("no selections to analyze",
			zap.String("op", "main"),
		)
	}

	if err := writeReport(ctx, logger, conf, selections, outputFormat, warnings, os.Stdout); err != nil {
		logger.Fatal("failed to produce report",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

// writeReport analyzes the selections against the configured records and
// renders the result to w. The directory is closed before returning.
func writeReport(ctx context.Context, logger *zap.Logger, conf *config.Configuration, selections []analysis.Selection, outputFormat string, warnings []string, w io.Writer) error {
	directory, closeDirectory := conf.BuildDirectory(ctx, logger)
	defer func() {
		if err := closeDirectory(); err != nil {
			logger.Warn("failed to close directory cache",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	analyzer := analysis.NewAnalyzer(logger, directory)

	var results []analysis.Metrics
	switch len(selections) {
	case 0:
		return errors.New("no selections to analyze")
	case 1:
		metrics, err := analyzer.Analyze(ctx, selections[0], conf.Assumptions)
		if err != nil {
			return fmt.Errorf("failed to analyze selection: %w", err)
		}
		results = []analysis.Metrics{metrics}
	default:
		comparison, err := analyzer.Compare(ctx, selections[0], selections[1], conf.Assumptions)
		if err != nil {
			return fmt.Errorf("failed to compare selections: %w", err)
		}
		results = []analysis.Metrics{comparison.First, comparison.Second}
	}

	if err := output.Write(w, outputFormat, output.NewReport(results, warnings)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runServer(ctx context.Context, serverConfigLocation, configLocation string, configSet bool, logLevel string) {
	serverConf, err := server.LoadConfig(serverConfigLocation)
	if err != nil {
		fatalf(fmt.Sprintf("failed to load server configuration at %s", serverConfigLocation), err)
	}

	logger, err := initializeLogger(serverConf.Logging, logLevel)
	if err != nil {
		fatalf("failed to initialize logger", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	recordsLocation := serverConf.Records
	if configSet {
		recordsLocation = configLocation
	}

	conf, err := config.LoadConfiguration(recordsLocation)
	if err != nil {
		logger.Fatal("failed to load records configuration",
			zap.String("op", "main"),
			zap.String("path", recordsLocation),
			zap.Error(err),
		)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	directory, closeDirectory := conf.BuildDirectory(ctx, logger)

	handler := server.NewHandler(logger, directory, serverConf.UploadSizeBytes(), version)
	runErr := server.Run(ctx, logger, serverConf, handler)
	if err := closeDirectory(); err != nil {
		logger.Warn("failed to close directory cache",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if runErr != nil {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(runErr),
		)
	}
}
