package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jspark1st/excel-translate/internal"
)

// CreateRootCommand creates and configures the root cobra command.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excel-translate [input.xlsx] [output.xlsx]",
		Short: "Spreadsheet to Korean translator",
		Long: `excel-translate translates the textual contents of a spreadsheet file
to Korean, preserving numbers, empty cells, and text that is already Korean.

The output defaults to <input>_translated.xlsx next to the input file.

Examples:
  excel-translate                      # Launch interactive GUI (default)
  excel-translate report.xlsx          # Translate via CLI
  excel-translate report.xlsx out.xlsx # Translate to an explicit output path`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.excel-translate.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file path (default: <input>_translated.xlsx)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Provider model override")
	cmd.Flags().IntVar(&flags.MaxAttempts, "max-attempts", flags.MaxAttempts, "Translation attempts per cell before falling back to the original text")
	cmd.Flags().DurationVar(&flags.RetryDelay, "retry-delay", flags.RetryDelay, "Backoff delay after the first failed attempt (doubles per retry)")
	cmd.Flags().DurationVar(&flags.Pace, "pace", flags.Pace, "Delay after each successful translation call")
	cmd.Flags().Float64Var(&flags.KoreanThreshold, "korean-threshold", flags.KoreanThreshold, "Hangul-to-letter ratio above which a cell counts as already Korean (0: any Hangul)")
	cmd.Flags().StringVar(&flags.MemoryDB, "memory-db", "", "Path to a SQLite translation memory (empty: disabled)")
	cmd.Flags().StringVar(&flags.LogDir, "log-dir", flags.LogDir, "Log file directory")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log file level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.NoLogFile, "no-log-file", false, "Log to the console only")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.max_attempts", cmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("translate.retry_delay", cmd.Flags().Lookup("retry-delay"))
	viper.BindPFlag("translate.pace", cmd.Flags().Lookup("pace"))
	viper.BindPFlag("translate.korean_threshold", cmd.Flags().Lookup("korean-threshold"))
	viper.BindPFlag("translate.memory_db", cmd.Flags().Lookup("memory-db"))
	viper.BindPFlag("log.directory", cmd.Flags().Lookup("log-dir"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
}

// InitConfig initializes viper configuration.
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".excel-translate" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".excel-translate")
	}

	// Environment variables
	viper.SetEnvPrefix("EXCEL_TRANSLATE")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config.
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config.
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translate.gemini_key")
}

// GetAPIKey returns the API key for the given provider.
func GetAPIKey(provider string) string {
	if provider == "gemini" {
		return GetGeminiKey()
	}
	return GetOpenAIKey()
}
