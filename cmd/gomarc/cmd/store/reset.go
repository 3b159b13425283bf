package store

import (
	"fmt"

	"gomarc/cli"
	"gomarc/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipes every stored record directly on disk.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		if err := store.TruncateRecordStore(db); err != nil {
			return errors.Wrap(err, "error truncating record store")
		}
		if err := db.Close(); err != nil {
			return errors.Wrap(err, "error closing DB")
		}
		fmt.Println("Record store wiped.")
		return nil
	},
}

func init() {
	cmd.AddCommand(resetCmd)
}
