package cmd

import (
	"context"
	"os"
	"strconv"

	"gomarc/cli"
	"gomarc/iso2709"
	"gomarc/log"
	"gomarc/marc"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"
)

type recordCounter struct {
	iso2709.NopHandler
	count int
}

func (r *recordCounter) StartRecord(*marc.Leader) error {
	r.count++
	return nil
}

type verifyResult struct {
	file      string
	records   int
	collector *iso2709.Collector
	err       error
}

func (v *verifyResult) status() string {
	switch {
	case v.err != nil && !v.collector.HasErrors():
		return "FAILED"
	case v.collector.HasErrors():
		return "INVALID"
	default:
		return "OK"
	}
}

var verifyCmd = &cobra.Command{
	Use:   "verify <files...>",
	Short: "Decodes record files and reports every problem found.",
	Long: `Decodes each file, logs every diagnostic and prints a summary. Files are
decoded concurrently, one decoder per file. Exits with an error when any file
has errors or fatal errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lgr := log.WithModule("verify")
		workers := int64(cfg.Verify.Workers)
		if workers < 1 {
			workers = 1
		}
		sem := semaphore.NewWeighted(workers)
		ctx := context.Background()
		charset := cli.StringFlagOr(cmd, cli.FlagCharset, cfg.Decoder.SourceCharset)

		results := make([]*verifyResult, len(args))
		for i, file := range args {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			res := &verifyResult{
				file:      file,
				collector: new(iso2709.Collector),
			}
			results[i] = res
			go func() {
				defer sem.Release(1)
				counter := new(recordCounter)
				h, err := cli.WithSourceCharset(counter, charset)
				if err != nil {
					res.err = err
					return
				}
				eh := iso2709.TeeErrorHandler{res.collector, cli.NewDiagnosticLogger(cfg, lgr)}
				res.err = iso2709.NewDecoder(h, iso2709.WithErrorHandler(eh)).ParseFile(res.file)
				res.records = counter.count
			}()
		}
		if err := sem.Acquire(ctx, workers); err != nil {
			return err
		}

		var failed int
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"File", "Records", "Warnings", "Errors", "Fatal", "Status"})
		for _, res := range results {
			status := res.status()
			if status != "OK" {
				failed++
			}
			if res.err != nil {
				lgr.Error("error verifying file", "file", res.file, "err", res.err)
			}
			table.Append([]string{
				res.file,
				strconv.Itoa(res.records),
				strconv.Itoa(res.collector.Count(iso2709.SeverityWarning)),
				strconv.Itoa(res.collector.Count(iso2709.SeverityError)),
				strconv.Itoa(res.collector.Count(iso2709.SeverityFatal)),
				status,
			})
		}
		table.Render()

		if failed > 0 {
			return errors.Errorf("%d of %d files failed verification", failed, len(results))
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().String(cli.FlagCharset, "", "Charset of field payloads")
	rootCmd.AddCommand(verifyCmd)
}
