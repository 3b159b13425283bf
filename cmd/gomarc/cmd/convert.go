package cmd

import (
	"fmt"
	"os"

	"gomarc/cli"
	"gomarc/iso2709"
	"gomarc/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Decodes records and writes them back in canonical form.",
	Long: `Decodes every record in <in> and re-encodes it to <out>, recomputing the
directory, base address and record length. Records that cannot be encoded
are logged and skipped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, name, err := cli.OpenInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.OpenFile(args[1], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return errors.Wrap(err, "error opening output")
		}
		defer out.Close()

		sourceCharset := cli.StringFlagOr(cmd, cli.FlagCharset, cfg.Decoder.SourceCharset)
		targetCharset := cli.StringFlagOr(cmd, cli.FlagEncoding, cfg.Encoder.TargetCharset)
		w := iso2709.NewWriter(out, iso2709.WithTargetCharset(targetCharset))
		h, err := cli.WithSourceCharset(w, sourceCharset)
		if err != nil {
			return err
		}
		dec := iso2709.NewDecoder(
			h,
			iso2709.WithErrorHandler(cli.NewDiagnosticLogger(cfg, log.WithModule("convert"))),
			iso2709.WithFileName(name),
		)
		if err := dec.Parse(in); err != nil {
			return err
		}
		if err := out.Close(); err != nil {
			return errors.Wrap(err, "error closing output")
		}
		fmt.Printf("Converted %d records (%d skipped).\n", w.Written(), w.Skipped())
		return nil
	},
}

func init() {
	convertCmd.Flags().String(cli.FlagCharset, "", "Charset of input payloads, converted to UTF-8 while decoding")
	convertCmd.Flags().String(cli.FlagEncoding, "", "Charset to write payloads in")
	rootCmd.AddCommand(convertCmd)
}
