package store

import (
	"fmt"

	"gomarc/cli"
	"gomarc/store"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <control-number>",
	Short: "Deletes a stored record.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.DeleteRecord(db, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted record %s.\n", args[0])
		return nil
	},
}

func init() {
	cmd.AddCommand(deleteCmd)
}
