package store

import (
	"os"
	"strconv"
	"time"

	"gomarc/cli"
	"gomarc/store"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listStart string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored records in control number order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stream, err := store.StreamRecordInfo(db, listStart)
		if err != nil {
			return err
		}
		defer stream.Close()

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Control Number", "Fields", "Checksum", "Source", "Imported At"})
		for {
			info, err := stream.Next()
			if err != nil {
				return err
			}
			if info == nil {
				break
			}
			table.Append([]string{
				info.ControlNumber,
				strconv.Itoa(info.FieldCount),
				info.Checksum.String()[:16],
				info.Source,
				info.ImportedAt.Format(time.RFC3339),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStart, "start", "", "List records after this control number")
	cmd.AddCommand(listCmd)
}
