package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "colonnade",
	Short: "Page through log lines in a table with adjustable columns",
	Long: `Colonnade loads newline delimited json into a table whose column widths,
visibility and order can be adjusted and are remembered between runs.`,
	PersistentPreRunE: bindFlags,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.colonnade.yaml)")
}

func initConfig() {

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".colonnade")
	}

	viper.SetEnvPrefix("colonnade")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "failed to read config: %s\n", err)
			os.Exit(1)
		}
	}
}

// bindFlags sets flags from config or env when not given on the command line
func bindFlags(cmd *cobra.Command, _ []string) (err error) {

	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed || !viper.IsSet(flag.Name) {
			return
		}

		err = cmd.Flags().Set(flag.Name, fmt.Sprintf("%v", viper.Get(flag.Name)))
		err = errors.Wrapf(err, "failed to set %s from config", flag.Name)
	})
	return
}
