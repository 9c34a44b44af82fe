package cmd

import (
	"github.com/spf13/cobra"

	"github.com/phpjs/phpjs/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "phpjs",
	Short: "PHP-JS interpreter",
	Long: `phpjs is a tree-walking interpreter for PHP-JS, a small PHP-flavored
scripting language: sigil-prefixed variables, C-style control flow, and
dot-concatenation strings.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./phpjs.yaml)")

	cobra.OnInitialize(func() {
		cfg = config.Load(cfgFile)
	})
}

var cfgFile string
