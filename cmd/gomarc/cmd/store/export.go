package store

import (
	"fmt"
	"io"
	"os"

	"gomarc/cli"
	"gomarc/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Writes every stored record to a file, or stdout when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		var out io.Writer = os.Stdout
		if len(args) == 1 && args[0] != "-" {
			f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return errors.Wrap(err, "error opening output")
			}
			defer f.Close()
			out = f
		}

		n, err := store.ExportRecords(db, out)
		if err != nil {
			return err
		}
		if out != os.Stdout {
			fmt.Printf("Exported %d records.\n", n)
		}
		return nil
	},
}

func init() {
	cmd.AddCommand(exportCmd)
}
