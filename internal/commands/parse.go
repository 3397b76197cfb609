package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rupeetrail/stmt-ledger/internal/categorize"
	"github.com/rupeetrail/stmt-ledger/internal/extractor"
	"github.com/rupeetrail/stmt-ledger/internal/processor"
	"github.com/rupeetrail/stmt-ledger/internal/writer"
)

func newParseCommand() *cobra.Command {
	var rulesPath string
	var csvPath string

	cmd := &cobra.Command{
		Use:   "parse <statement.pdf|statement.txt> [more files...]",
		Short: "Parse statements into a categorized transaction ledger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := buildProcessor(rulesPath)
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := runParse(proc, path, csvPath); err != nil {
					return fmt.Errorf("processing %s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a YAML category rules override")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write CSV to this path instead of JSON to stdout")

	return cmd
}

func buildProcessor(rulesPath string) (*processor.Processor, error) {
	if rulesPath == "" {
		return processor.New(), nil
	}
	rules, err := categorize.LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	return processor.NewWithRules(rules), nil
}

func runParse(proc *processor.Processor, inputPath, csvPath string) error {
	text, err := statementText(inputPath)
	if err != nil {
		return err
	}

	ex, err := proc.ExtractTransactions(text)
	if err != nil {
		return err
	}

	if len(ex.Transactions) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no transactions found; the statement layout may not match expected patterns")
	}

	if csvPath != "" {
		w := &writer.CSVWriter{IncludeHeader: true}
		if err := w.WriteToFile(csvPath, ex); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %d transactions to %s\n", len(ex.Transactions), csvPath)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ex)
}

// statementText loads input either directly (plain text files) or through
// the PDF extractor.
func statementText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		pages, err := extractor.ExtractText(path)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, "\n"), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
