package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/holiday-tracker/internal/config"
	"github.com/username/holiday-tracker/internal/model"
	"github.com/username/holiday-tracker/internal/store"
	"github.com/username/holiday-tracker/pkg/dateutil"
)

var (
	configPath string
	storePath  string
	logger     *zap.Logger
	outWriter  io.Writer = os.Stdout
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-tracker",
		Short: "Team availability tracker",
		Long:  "Track team member holidays and availability across today, iteration and month views",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Snapshot file path (overrides config)")

	rootCmd.AddCommand(todayCmd())
	rootCmd.AddCommand(iterationCmd())
	rootCmd.AddCommand(monthCmd())
	rootCmd.AddCommand(rangeCmd())
	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(peopleCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(resetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore loads config and the snapshot store. A fresh store is seeded
// with the sample roster and the configured default settings, anchored at
// today when no anchor is configured.
func openStore() (*store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	filePath := cfg.Storage.File
	if storePath != "" {
		filePath = storePath
	}

	seed := model.Snapshot{
		People:    model.SamplePeople(),
		Overrides: model.Overrides{},
		Settings:  cfg.SeedSettings(dateutil.ToDateString(dateutil.Today())),
	}

	s := store.New(filePath, seed, logger)
	if err := s.Load(); err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return s, nil
}

// defaultFocusDate is the next working day from the real current date.
func defaultFocusDate() string {
	focusDate, err := dateutil.NextWorkingDateString(dateutil.ToDateString(dateutil.Today()))
	if err != nil {
		return dateutil.ToDateString(dateutil.Today())
	}
	return focusDate
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}

func outPrintf(format string, a ...interface{}) {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	fmt.Fprintf(outWriter, format, a...)
}

func outPrintln(a ...interface{}) {
	if outWriter == nil {
		outWriter = os.Stdout
	}
	fmt.Fprintln(outWriter, a...)
}
