package store

import (
	"fmt"
	"time"

	"gomarc/cli"
	"gomarc/config"
	"gomarc/iso2709"
	"gomarc/log"
	"gomarc/marc"
	"gomarc/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Imports records into the store.",
	Long: `Decodes records from a file, or stdin when no file is given, and stores
them by control number. Records without a control number are skipped. Records
whose checksum matches the stored copy are skipped unless store.skip_unchanged
is disabled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		lgr := log.WithModule("import")

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		in, name, err := cli.OpenInput(path)
		if err != nil {
			return err
		}
		defer in.Close()

		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		interval := config.ConvertDuration(cfg.Store.ProgressIntervalMS, time.Millisecond)
		progress := rate.NewLimiter(rate.Every(interval), 1)

		var dec *iso2709.Decoder
		var written, unchanged, skipped int
		builder := iso2709.NewStreamingRecordBuilder(func(rec *marc.Record) error {
			ok, err := store.PutRecord(db, rec, name, cfg.Store.SkipUnchanged)
			if errors.Is(err, store.ErrNoControlNumber) {
				skipped++
				lgr.Warn("skipping record without control number", "position", dec.Position())
				return nil
			}
			if err != nil {
				return err
			}
			if ok {
				written++
			} else {
				unchanged++
			}
			if progress.Allow() {
				lgr.Info("import progress", "written", written, "unchanged", unchanged, "position", dec.Position())
			}
			return nil
		})

		charset := cli.StringFlagOr(cmd, cli.FlagCharset, cfg.Decoder.SourceCharset)
		h, err := cli.WithSourceCharset(builder, charset)
		if err != nil {
			return err
		}
		dec = iso2709.NewDecoder(
			h,
			iso2709.WithErrorHandler(cli.NewDiagnosticLogger(cfg, lgr)),
			iso2709.WithFileName(name),
		)
		if err := dec.Parse(in); err != nil {
			return errors.Wrap(err, "error importing records")
		}
		fmt.Printf("Imported %d records (%d unchanged, %d skipped).\n", written, unchanged, skipped)
		return nil
	},
}

func init() {
	importCmd.Flags().String(cli.FlagCharset, "", "Charset of field payloads, converted to UTF-8 before storing")
	cmd.AddCommand(importCmd)
}
