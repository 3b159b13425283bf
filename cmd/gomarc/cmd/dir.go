package cmd

import (
	"fmt"
	"os"
	"strconv"

	"gomarc/cli"
	"gomarc/iso2709"
	"gomarc/marc"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var dirCmd = &cobra.Command{
	Use:   "dir [file]",
	Short: "Prints the leader and directory of every record.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		in, _, err := cli.OpenInput(path)
		if err != nil {
			return err
		}
		defer in.Close()

		return iso2709.ScanDirectories(in, func(leader *marc.Leader, entries []marc.DirectoryEntry) error {
			fmt.Printf("Leader %s\n", leader)
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Tag", "Length", "Offset"})
			for _, e := range entries {
				table.Append([]string{
					e.Tag,
					strconv.Itoa(e.Length),
					strconv.Itoa(e.Offset),
				})
			}
			table.Render()
			fmt.Println()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
