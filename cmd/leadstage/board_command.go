package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leadstage/internal/api"
	"leadstage/internal/board"
	"leadstage/internal/config"
	"leadstage/internal/leadstore"
	"leadstage/internal/stagetaxonomy"
	"leadstage/internal/textutil"
)

func newBoardCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the lead board grouped by parent stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *leadstore.Store) error {
				snapshot, err := board.Snapshot(cmd.Context(), store)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, api.FromBoard(snapshot))
				}
				renderBoard(cmd, cfg, snapshot)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the board as JSON")
	return cmd
}

func renderBoard(cmd *cobra.Command, cfg *config.Config, snapshot *board.Board) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for i, column := range snapshot.Columns {
		if i > 0 {
			fmt.Fprintln(out)
		}
		title := fmt.Sprintf("%s (%d)", column.Stage.Label, len(column.Leads))
		for _, line := range renderSectionHeader(title, colorize) {
			fmt.Fprintln(out, line)
		}

		if reasons := board.Reasons(snapshot, column.Stage.Key, cfg.Board.ReasonsLimit); len(reasons) > 0 {
			fmt.Fprintf(out, "  reasons: %s\n", strings.Join(reasons, ", "))
		}
		if len(column.Leads) == 0 {
			fmt.Fprintln(out, "  (empty)")
			continue
		}
		for _, lead := range column.Leads {
			_, reason, _ := stagetaxonomy.ParseLabel(lead.Status)
			line := fmt.Sprintf("  #%-4d %-28s %s", lead.ID, textutil.Truncate(lead.CustomerName, 28), textutil.FormatPhone(lead.PhoneNumber))
			if reason != "" {
				line += "  [" + reason + "]"
			}
			fmt.Fprintln(out, line)
		}
	}
}
