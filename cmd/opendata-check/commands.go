package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/store"
)

// result is the JSON printed by validate --json and accepted by report --results.
type result struct {
	store.Record
	Passed bool `json:"passed"`
}

func newValidateCmd() *cobra.Command {
	var (
		asJSON bool
		save   bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a CSV, TXT, TSV or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}

			inputPath := args[0]
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			rec, err := a.validate(cmd.Context(), filepath.Base(inputPath), data, save)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				err = writeResultJSON(out, rec)
			} else {
				writeResultText(out, rec)
			}
			if err != nil {
				return err
			}

			if strict && rec.Observations.HasFindings() {
				return errFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Store the result and print its token")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when observations are found")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		token       string
		resultsPath string
		name        string
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the PDF report of a stored or exported validation result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (token == "") == (resultsPath == "") {
				return errors.New("exactly one of --token or --results is required")
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}

			var rec store.Record
			if token != "" {
				rec, err = a.store.Load(cmd.Context(), token)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("no result stored for token %q", token)
				}
			} else {
				rec, err = readResultFile(resultsPath)
			}
			if err != nil {
				return err
			}

			data, err := a.render(cmd.Context(), rec, name)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if outputPath == "" {
				outputPath = reportFilename(rec.Token)
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token of a stored result")
	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to a JSON result written by validate --json")
	cmd.Flags().StringVar(&name, "name", "", "Filename printed in the report (default: the validated file)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: informe_<token>.pdf)")
	return cmd
}

func writeResultJSON(w io.Writer, rec store.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result{Record: rec, Passed: !rec.Observations.HasFindings()}); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return nil
}

func writeResultText(w io.Writer, rec store.Record) {
	fmt.Fprintf(w, "Archivo: %s\n", rec.Filename)
	fmt.Fprintf(w, "Validado: %s\n", rec.ValidatedAt.Format(timestampLayout))
	if rec.Token != "" {
		fmt.Fprintf(w, "Token: %s\n", rec.Token)
	}

	for _, c := range models.Categories {
		fmt.Fprintf(w, "\n%s\n", categoryLabels[c])
		for _, o := range rec.Observations.Get(c) {
			fmt.Fprintf(w, "  - %s\n", o)
		}
	}

	if rec.Observations.HasFindings() {
		fmt.Fprintf(w, "\nObservaciones: %d\n", rec.Observations.Count())
	} else {
		fmt.Fprintln(w, "\nEl archivo cumple con los criterios revisados.")
	}
}

// readResultFile reads a result exported by validate --json. A bare
// observation set is accepted too.
func readResultFile(path string) (store.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Record{}, fmt.Errorf("failed to read results: %w", err)
	}

	var res result
	if err := json.Unmarshal(data, &res); err != nil {
		return store.Record{}, fmt.Errorf("failed to parse results: %w", err)
	}
	if isEmptySet(res.Observations) {
		var obs models.ObservationSet
		if err := json.Unmarshal(data, &obs); err != nil {
			return store.Record{}, fmt.Errorf("failed to parse results: %w", err)
		}
		res.Observations = obs
	}
	if isEmptySet(res.Observations) {
		return store.Record{}, fmt.Errorf("no observations found in %s", path)
	}
	return res.Record, nil
}

func isEmptySet(o models.ObservationSet) bool {
	return o.Format == nil && o.Filename == nil && o.Columns == nil && o.Data == nil
}

func reportFilename(token string) string {
	if token == "" {
		return "informe.pdf"
	}
	return "informe_" + token + ".pdf"
}
