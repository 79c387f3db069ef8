package main

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"colonnade"
	nt "colonnade/entity"
	"colonnade/layout"
	"colonnade/store"
	"colonnade/store/duck"
	"colonnade/store/file"
	"colonnade/store/lite"
	"colonnade/store/memo"
	"colonnade/table"
	"colonnade/util"
)

const (
	defaultWidth = 20
	logMode      = 0644
)

var viewOpt struct {
	layout     string
	storageKey string
	store      string
	storePath  string
	showConfig bool
	logFile    string
}

var viewCmd = &cobra.Command{
	Use:   "view <ndjson-file>",
	Short: "View a log file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return view(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)

	flags := viewCmd.Flags()
	flags.StringVarP(&viewOpt.layout, "layout", "l", "", "yaml layout with default columns")
	flags.StringVarP(&viewOpt.storageKey, "storage-key", "k", "", "namespace for saved column config")
	flags.StringVarP(&viewOpt.store, "store", "s", "file", "where to save column config: memo, file, duck or sqlite")
	flags.StringVar(&viewOpt.storePath, "store-path", "", "directory or database for the store")
	flags.BoolVarP(&viewOpt.showConfig, "show-column-config", "c", false, "enable the column dialog")
	flags.StringVar(&viewOpt.logFile, "log-file", "colonnade.log", "log output, the terminal belongs to the table")
}

func view(ctx context.Context, path string) (err error) {

	if ctx == nil {
		ctx = context.Background()
	}

	logFile := util.OpenLog(viewOpt.logFile, logMode)
	defer util.CloseLog(logFile)
	lgr := &sabot.Sabot{Writer: logFile}

	duckPath := ""
	if viewOpt.store == "duck" {
		duckPath = viewOpt.storePath
	}

	dk, err := duck.New(ctx, duckPath, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(path)
	if err != nil {
		return
	}

	medium, closeMedium, err := openMedium(viewOpt.store, viewOpt.storePath, dk)
	if err != nil {
		return
	}
	defer closeMedium()

	props, err := loadProps(dk)
	if err != nil {
		return
	}
	lgr.Info(ctx, "starting", "path", path, "store", viewOpt.store, "key", props.StorageKey, "columns", len(props.Columns))

	port := store.New(ctx, medium, lgr)
	model := colonnade.NewModel(ctx, dk, port, props, lgr)
	if viewOpt.layout != "" {
		model = model.WithReload(reloadLayout(viewOpt.layout))
	}

	_, err = tea.NewProgram(model).Run()
	if err != nil {
		err = errors.Wrapf(err, "failed to run table")
		lgr.Error(ctx, "exiting", err)
	}
	return
}

// openMedium opens the medium column config is saved to
func openMedium(kind, path string, dk *duck.Duck) (medium store.Medium, closer func(), err error) {

	closer = func() {}

	switch kind {
	case "memo":
		medium = memo.New()

	case "file":
		if path == "" {
			path = ".colonnade"
		}
		medium, err = file.New(path)

	case "duck":
		medium = dk

	case "sqlite":
		if path == "" {
			path = "colonnade.sqlite"
		}
		var lt *lite.Lite
		lt, err = lite.New(path)
		if err != nil {
			return
		}
		medium, closer = lt, lt.Close

	default:
		err = errors.Errorf("unknown store %q", kind)
	}

	return
}

// loadProps reads the layout when given, otherwise makes a column per field
func loadProps(dk *duck.Duck) (props table.Props, err error) {

	props = table.Props{
		StorageKey:       viewOpt.storageKey,
		ShowColumnConfig: viewOpt.showConfig,
	}

	if viewOpt.layout != "" {
		var lo *layout.Layout
		lo, err = layout.LoadLayout(viewOpt.layout)
		if err != nil {
			return
		}

		props.Columns = lo.Columns
		props.PageSize = lo.PageSize
		props.ShowColumnConfig = props.ShowColumnConfig || lo.ShowColumnConfig
		if props.StorageKey == "" {
			props.StorageKey = lo.StorageKey
		}
	}

	if len(props.Columns) > 0 {
		return
	}

	fields, err := dk.Fields()
	if err != nil {
		return
	}
	props.Columns = fieldColumns(fields)
	return
}

// reloadLayout returns a func reading default columns from the layout at path
func reloadLayout(path string) func() ([]nt.Column, error) {
	return func() (columns []nt.Column, err error) {

		lo, err := layout.LoadLayout(path)
		if err != nil {
			return
		}
		columns = lo.Columns
		return
	}
}

func fieldColumns(fields []nt.Field) (columns []nt.Column) {

	for _, field := range fields {
		if field.Name == "id" || field.Name == nt.FillerField {
			continue
		}
		columns = append(columns, nt.Column{Field: field.Name, Width: defaultWidth})
	}
	return
}
