package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"colonnade/store"
	"colonnade/store/duck"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <ndjson-file>",
	Short: "Show the fields of a log file and the saved column config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	flags := inspectCmd.Flags()
	flags.StringVarP(&viewOpt.storageKey, "storage-key", "k", "", "namespace for saved column config")
	flags.StringVarP(&viewOpt.store, "store", "s", "file", "where column config is saved: memo, file, duck or sqlite")
	flags.StringVar(&viewOpt.storePath, "store-path", "", "directory or database for the store")
}

func inspect(ctx context.Context, out io.Writer, path string) (err error) {

	if ctx == nil {
		ctx = context.Background()
	}

	duckPath := ""
	if viewOpt.store == "duck" {
		duckPath = viewOpt.storePath
	}

	dk, err := duck.New(ctx, duckPath, nil)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(path)
	if err != nil {
		return
	}

	fields, err := dk.Fields()
	if err != nil {
		return
	}
	count, err := dk.Count()
	if err != nil {
		return
	}

	fmt.Fprintf(out, "%s: %d lines\n\n", dk.Name(), count)
	for _, field := range fields {
		fmt.Fprintf(out, "  %-24s %s\n", field.Name, field.Type)
	}

	medium, closeMedium, err := openMedium(viewOpt.store, viewOpt.storePath, dk)
	if err != nil {
		return
	}
	defer closeMedium()

	key := viewOpt.storageKey
	if key == "" {
		key = store.DefaultKey
	}
	printConfig(out, store.New(ctx, medium, nil), key)
	return
}

func printConfig(out io.Writer, port store.Port, key string) {

	fmt.Fprintf(out, "\nsaved config for %q\n", key)

	widths := store.Widths(port, key)
	names := make([]string, 0, len(widths))
	for name := range widths {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "  widths:  ")
	for _, name := range names {
		fmt.Fprintf(out, "%s=%d ", name, widths[name])
	}
	fmt.Fprintf(out, "\n  visible: %s\n  order:   %s\n", describe(store.Visible(port, key)), describe(store.Order(port, key)))
	fmt.Fprintf(out, "  page:    %d\n", store.PageSize(port, key, store.DefaultPageSize))
}

func describe(fields []string) string {
	if fields == nil {
		return "(not saved)"
	}
	return fmt.Sprintf("%v", fields)
}

