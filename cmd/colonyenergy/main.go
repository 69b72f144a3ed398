package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	seed    uint64
	outDir  string

	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colonyenergy",
	Short: "Mars colony energy calculators",
	Long: `colonyenergy computes the energy budget of a Mars colony from closed-form
physical models: pressurizing and heating habitat air, photovoltaic output
over a Martian year, methane production via electrolysis and the Sabatier
reaction, and nuclear and wind power sources.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colonyenergy.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "seed for the stochastic efficiency draws")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "out", "output directory for generated reports")

	// Bind flags to viper
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(habitatCmd)
	rootCmd.AddCommand(solarCmd)
	rootCmd.AddCommand(sabatierCmd)
	rootCmd.AddCommand(nuclearCmd)
	rootCmd.AddCommand(windCmd)
	rootCmd.AddCommand(reportCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".colonyenergy" (without extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".colonyenergy")
	}

	viper.SetEnvPrefix("COLONYENERGY")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() *slog.Logger {
	w := os.Stderr

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	}))
}
