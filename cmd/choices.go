package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"choicefetch/src/core/domain"
)

var (
	choicesQuery  string
	choicesRepeat int
	choicesJSON   bool
)

var choicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "Run the choices query once and print the rows",
	Long: `The choices command runs the choices query (APP_CHOICES_QUERY, or --query) through
the database worker and prints the rows. With --repeat N the query is issued N times
concurrently; every call must succeed and the rows of the first are printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, log, client, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer closeClient(cfg, log, client)

		query := cfg.Client.Query()
		if choicesQuery != "" {
			query = domain.Query(choicesQuery)
		}
		if choicesRepeat < 1 {
			choicesRepeat = 1
		}

		results := make([][]domain.Choice, choicesRepeat)
		g, gctx := errgroup.WithContext(ctx)
		for i := range results {
			g.Go(func() error {
				choices, err := client.Choices(gctx, query)
				if err != nil {
					return err
				}
				results[i] = choices
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Error("choices query failed", "error", err)
			return err
		}

		log.Debug("choices query completed", "calls", choicesRepeat, "rows", len(results[0]))

		if choicesJSON {
			return writeJSON(cmd.OutOrStdout(), results[0])
		}
		return writeTable(cmd.OutOrStdout(), results[0])
	},
}

func init() {
	choicesCmd.Flags().StringVarP(&choicesQuery, "query", "q", "", "statement returning (identifier, description) rows")
	choicesCmd.Flags().IntVar(&choicesRepeat, "repeat", 1, "number of concurrent calls to issue")
	choicesCmd.Flags().BoolVar(&choicesJSON, "json", false, "print rows as JSON instead of a table")
}

func writeJSON(w io.Writer, choices []domain.Choice) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(choices)
}

func writeTable(w io.Writer, choices []domain.Choice) error {
	data := pterm.TableData{{"ID", "Description"}}
	for _, c := range choices {
		data = append(data, []string{c.ID, c.Description})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
