package cmd

import (
	"os"

	"gomarc/cli"
	"gomarc/iso2709"
	"gomarc/log"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Prints every record as a tagged listing.",
	Long: `Prints every record as a tagged listing. Reads from stdin when no file
is given. Diagnostics are logged to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		in, name, err := cli.OpenInput(path)
		if err != nil {
			return err
		}
		defer in.Close()

		charset := cli.StringFlagOr(cmd, cli.FlagCharset, cfg.Decoder.SourceCharset)
		h, err := cli.WithSourceCharset(iso2709.NewTaggedWriter(os.Stdout), charset)
		if err != nil {
			return err
		}
		dec := iso2709.NewDecoder(
			h,
			iso2709.WithErrorHandler(cli.NewDiagnosticLogger(cfg, log.WithModule("dump"))),
			iso2709.WithFileName(name),
		)
		return dec.Parse(in)
	},
}

func init() {
	dumpCmd.Flags().String(cli.FlagCharset, "", "Charset of field payloads, converted to UTF-8 for display")
	rootCmd.AddCommand(dumpCmd)
}
