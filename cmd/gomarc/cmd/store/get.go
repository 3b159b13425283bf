package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gomarc/cli"
	"gomarc/iso2709"
	"gomarc/store"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <control-number>",
	Short: "Prints a stored record.",
	Long: `Prints a stored record as a tagged listing, or its stored metadata when
--format is json.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		format, _ := cmd.Flags().GetString(cli.FlagFormat)
		if format == "json" {
			info, err := store.GetRecordInfo(db, args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if err := store.VerifyRecord(db, args[0]); err != nil {
			return err
		}
		raw, err := store.GetRawRecord(db, args[0])
		if err != nil {
			return err
		}
		return iso2709.NewDecoder(iso2709.NewTaggedWriter(os.Stdout)).Parse(bytes.NewReader(raw))
	},
}

func init() {
	cmd.AddCommand(getCmd)
}
