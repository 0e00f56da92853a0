package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"leadstage/internal/api"
	"leadstage/internal/config"
	"leadstage/internal/textutil"
)

func newStagesCommand(ctx *commandContext) *cobra.Command {
	stagesCmd := &cobra.Command{
		Use:   "stages",
		Short: "Manage the stage collection",
	}

	stagesCmd.AddCommand(newStagesListCommand(ctx))
	stagesCmd.AddCommand(newStagesAddCommand(ctx))

	return stagesCmd
}

func newStagesListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List derived parent stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				stages, err := svc.Stages(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, api.StageListResponse{Stages: stages})
				}
				rows := make([][]string, 0, len(stages))
				for _, stage := range stages {
					rows = append(rows, []string{
						stage.Key,
						stage.Label,
						textutil.Truncate(strings.Join(stage.Reasons, ", "), 48),
					})
				}
				headers := []string{"Key", "Label", "Reasons"}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit stages as JSON")
	return cmd
}

func newStagesAddCommand(ctx *commandContext) *cobra.Command {
	var columnClass, headerClass string

	cmd := &cobra.Command{
		Use:   "add <label>",
		Short: "Append a stage record to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				stages, err := svc.AddStage(cmd.Context(), args[0], columnClass, headerClass)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added stage %q (%d parent stages)\n", args[0], len(stages))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&columnClass, "column-class", "", "Column style hint")
	cmd.Flags().StringVar(&headerClass, "header-class", "", "Header style hint")
	return cmd
}
