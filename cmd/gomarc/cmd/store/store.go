package store

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "store",
	Short: "Commands related to the local record store.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
