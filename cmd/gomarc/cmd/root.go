package cmd

import (
	"fmt"
	"os"

	"gomarc/cli"
	"gomarc/cmd/gomarc/cmd/store"
	"gomarc/config"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "gomarc",
	Short: "Reads, checks, converts and stores MARC ISO 2709 records.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" {
			return nil
		}
		var err error
		cfg, err = cli.Setup(cmd)
		return err
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.gomarc", "Home directory for gomarc's config and record store.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "text", "Output format")
	store.AddCmd(rootCmd)
}
