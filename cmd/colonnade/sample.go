package main

import (
	"github.com/spf13/cobra"

	"colonnade/util"
)

const sampleLayout = `# default columns, in default order
storage_key: table-columns-width
show_column_config: true
page_size: 20
columns:
  - field: ts
    title: Time
    width: 24
    format: "15:04:05.000"
  - field: level
    title: Level
    width: 8
  - field: msg
    title: Message
    width: 60
`

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write a sample layout unless one exists",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := "layout.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		return util.SampleConfig([]byte(sampleLayout), path, logMode)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
