package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jspark1st/excel-translate/internal/classify"
	"github.com/jspark1st/excel-translate/internal/cli"
	"github.com/jspark1st/excel-translate/internal/gui"
	"github.com/jspark1st/excel-translate/internal/logging"
	"github.com/jspark1st/excel-translate/internal/memory"
	"github.com/jspark1st/excel-translate/internal/pipeline"
	"github.com/jspark1st/excel-translate/internal/translation"
	"github.com/jspark1st/excel-translate/internal/xlsx"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(args []string, flags *cli.Flags) error {
	fileLevel, err := logging.ParseLevel(flags.LogLevel)
	if err != nil {
		return err
	}

	logger, closeLogs, err := logging.Init(logging.Options{
		Dir:         flags.LogDir,
		FileLevel:   fileLevel,
		ConsoleOnly: flags.NoLogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLogs()

	// No input provided - launch GUI mode by default
	if len(args) == 0 {
		return runGUI(flags, logger)
	}

	return runCLI(args, flags, logger)
}

func runGUI(flags *cli.Flags, logger *slog.Logger) error {
	app := gui.New(&gui.Config{
		Provider:        flags.Provider,
		APIKey:          cli.GetAPIKey(flags.Provider),
		Model:           flags.Model,
		MaxAttempts:     flags.MaxAttempts,
		RetryDelay:      flags.RetryDelay,
		Pace:            flags.Pace,
		KoreanThreshold: flags.KoreanThreshold,
		MemoryDB:        flags.MemoryDB,
		Logger:          logger,
	})
	app.Run()
	return nil
}

func runCLI(args []string, flags *cli.Flags, logger *slog.Logger) error {
	// Ctrl-C cancels between cells; no partial file is written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inputPath := args[0]
	outputPath := flags.OutputPath
	if len(args) > 1 {
		outputPath = args[1]
	}
	if outputPath == "" {
		outputPath = xlsx.DefaultOutputPath(inputPath)
	}

	fmt.Printf("Input file: %s\n", inputPath)
	fmt.Printf("Output file: %s\n", outputPath)

	service, err := translation.NewService(ctx, flags.Provider, cli.GetAPIKey(flags.Provider), flags.Model)
	if err != nil {
		return err
	}

	opts := translation.Options{
		MaxAttempts: flags.MaxAttempts,
		BaseDelay:   flags.RetryDelay,
		Pace:        flags.Pace,
		Logger:      logger,
	}
	if flags.MemoryDB != "" {
		store, err := memory.Open(flags.MemoryDB)
		if err != nil {
			return fmt.Errorf("failed to open translation memory: %w", err)
		}
		defer store.Close()
		opts.Memory = store
	}
	client := translation.NewClient(service, opts)

	wb, err := xlsx.Load(inputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d sheet(s), %d cell(s)\n", len(wb.Sheets), wb.CellCount())

	p := pipeline.New(classify.New(flags.KoreanThreshold), client, pipeline.Options{
		Logger: logger,
		OnSheet: func(index, count int, sheet *xlsx.Sheet) {
			cols := 0
			if len(sheet.Rows) > 0 {
				cols = len(sheet.Rows[0])
			}
			fmt.Printf("\n[%d/%d] Translating sheet %q (%d rows, %d columns)...\n",
				index+1, count, sheet.Name, len(sheet.Rows), cols)
		},
		Progress: func(done, total int) {
			fmt.Printf("\r  %d/%d cells (%d%%)", done, total, done*100/total)
		},
	})

	out, stats, err := p.Run(ctx, wb)
	fmt.Println()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Printf("\nCancelled after %d of %d cells; no file written.\n",
				stats.TotalCells, wb.CellCount())
		}
		return err
	}

	if err := xlsx.Write(out, outputPath); err != nil {
		return err
	}

	printSummary(stats, outputPath)
	return nil
}

func printSummary(stats *pipeline.Stats, outputPath string) {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Total cells: %d\n", stats.TotalCells)
	fmt.Printf("Translated: %d\n", stats.TranslatedCells)
	fmt.Printf("Skipped: %d (%d empty, %d numbers, %d already Korean)\n",
		stats.SkippedCells, stats.SkippedEmpty, stats.SkippedNumbers, stats.SkippedKorean)
	if stats.ErrorCells > 0 {
		fmt.Printf("Errors: %d (original text kept)\n", stats.ErrorCells)
	}
	fmt.Printf("Elapsed: %s\n", stats.Elapsed)
	fmt.Printf("===========================\n")
	fmt.Printf("\nDone! Translated file saved to: %s\n", outputPath)
}
