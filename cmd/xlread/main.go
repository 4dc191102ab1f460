// Package main provides the xlread command line interface.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javajack/xlread"
	"github.com/javajack/xlread/xlsio"
	"github.com/javajack/xlread/xlsxio"
)

var pretty bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlread",
		Short: "Read-only, address-based access to spreadsheet workbooks",
		Long: `xlread enumerates worksheets, resolves A1-style cell ranges, and
extracts normalized cell values from xlsx and legacy xls workbooks.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "metadata FILE",
		Short: "Print workbook metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := xlread.GetWorkbookMetadata(openerFor(args[0]), args[0])
			if err != nil {
				return err
			}
			return printJSON(meta)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "read FILE WORKSHEET RANGE",
		Short: "Print the values of a cell range as JSON",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := xlread.ReadDataFromExcel(openerFor(args[0]), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect FILE",
		Short: "Print a human-readable examination of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := xlread.Inspect(openerFor(args[0]), args[0])
			if err != nil {
				return err
			}
			fmt.Print(report)
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openerFor picks the workbook provider by file extension.
func openerFor(path string) xlread.Opener {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return xlsio.Provider{}
	}
	return xlsxio.Provider{}
}

func printJSON(v any) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("serialize result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
