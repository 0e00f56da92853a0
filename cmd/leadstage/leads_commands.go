package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadstage/internal/api"
	"leadstage/internal/config"
	"leadstage/internal/textutil"
)

func newLeadsCommand(ctx *commandContext) *cobra.Command {
	leadsCmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage leads",
	}

	leadsCmd.AddCommand(newLeadsListCommand(ctx))
	leadsCmd.AddCommand(newLeadsShowCommand(ctx))
	leadsCmd.AddCommand(newLeadsAddCommand(ctx))
	leadsCmd.AddCommand(newLeadsMoveCommand(ctx))
	leadsCmd.AddCommand(newLeadsRemoveCommand(ctx))

	return leadsCmd
}

func newLeadsListCommand(ctx *commandContext) *cobra.Command {
	var statuses []string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads, optionally filtered by status label",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				leads, err := svc.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, api.LeadListResponse{Leads: leads})
				}
				if len(leads) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No leads found")
					return nil
				}
				rows := make([][]string, 0, len(leads))
				for _, lead := range leads {
					rows = append(rows, leadRow(lead))
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(leadHeaders, rows, leadAligns))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&statuses, "status", nil, "Filter by exact status label (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit leads as JSON")
	return cmd
}

func newLeadsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				lead, err := svc.Describe(cmd.Context(), id)
				if err != nil {
					return err
				}
				if lead == nil {
					return fmt.Errorf("lead %d not found", id)
				}
				if jsonOut {
					return writeJSON(cmd, lead)
				}
				printLeadDetails(cmd, lead)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the lead as JSON")
	return cmd
}

func printLeadDetails(cmd *cobra.Command, lead *api.Lead) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Lead #%d  (%s)\n", lead.ID, lead.CorrelationID)
	fmt.Fprintf(out, "  Customer:     %s\n", lead.CustomerName)
	fmt.Fprintf(out, "  Phone:        %s\n", textutil.FormatPhone(lead.PhoneNumber))
	fmt.Fprintf(out, "  Email:        %s\n", lead.Email)
	fmt.Fprintf(out, "  State:        %s\n", lead.State)
	fmt.Fprintf(out, "  Vendor:       %s\n", lead.LeadVendor)
	fmt.Fprintf(out, "  Agent:        %s\n", lead.AssignedAgent)
	fmt.Fprintf(out, "  Status:       %s\n", lead.Status)
	fmt.Fprintf(out, "  Stage key:    %s\n", lead.ParentKey)
	if lead.Reason != "" {
		fmt.Fprintf(out, "  Reason:       %s\n", lead.Reason)
	}
	fmt.Fprintf(out, "  Needs review: %s\n", yesNo(lead.NeedsReview))
	if lead.ReviewReason != "" {
		fmt.Fprintf(out, "  Review note:  %s\n", lead.ReviewReason)
	}
	if lead.Notes != "" {
		fmt.Fprintf(out, "  Notes:        %s\n", lead.Notes)
	}
	fmt.Fprintf(out, "  Created:      %s\n", displayTimestamp(lead.CreatedAt))
	fmt.Fprintf(out, "  Updated:      %s\n", displayTimestamp(lead.UpdatedAt))
	if lead.LastContactAt != "" {
		fmt.Fprintf(out, "  Last contact: %s\n", displayTimestamp(lead.LastContactAt))
	}
}

func newLeadsAddCommand(ctx *commandContext) *cobra.Command {
	var req api.AddLeadRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				lead, err := svc.Add(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added lead #%d (%s) in %q\n", lead.ID, lead.CustomerName, lead.Status)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.CustomerName, "name", "", "Customer name (required)")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.State, "state", "", "Two-letter state code")
	cmd.Flags().StringVar(&req.LeadVendor, "vendor", "", "Lead vendor")
	cmd.Flags().StringVar(&req.AssignedAgent, "agent", "", "Assigned agent")
	cmd.Flags().StringVar(&req.Status, "status", "", "Initial status label (defaults to the first stage)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLeadsMoveCommand(ctx *commandContext) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "move <id> <stage-key>",
		Short: "Move a lead to another parent stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				lead, err := svc.Move(cmd.Context(), id, api.MoveLeadRequest{ParentKey: args[1], Reason: reason})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved lead #%d to %q\n", lead.ID, lead.Status)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason appended to the stage label")
	return cmd
}

func newLeadsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLeadID(args[0])
			if err != nil {
				return err
			}
			return ctx.withService(func(cfg *config.Config, svc *api.LeadService) error {
				if err := svc.Remove(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed lead #%d\n", id)
				return nil
			})
		},
	}
}
