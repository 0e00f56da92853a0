package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"leadstage/internal/api"
	"leadstage/internal/config"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			status, err := fetchDaemonStatus(cfg)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, status)
			}
			renderDaemonStatus(cmd, status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit status as JSON")
	return cmd
}

func fetchDaemonStatus(cfg *config.Config) (*api.DaemonStatus, error) {
	url := "http://" + cfg.Paths.APIBind + "/api/status"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if token := strings.TrimSpace(cfg.Paths.APIToken); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect to daemon at %s: %w (is leadstaged running?)", cfg.Paths.APIBind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("daemon returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("daemon returned %d", resp.StatusCode)
	}

	var status api.DaemonStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}

func renderDaemonStatus(cmd *cobra.Command, status *api.DaemonStatus) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Daemon", colorize) {
		fmt.Fprintln(out, line)
	}
	runningKind := statusError
	if status.Running {
		runningKind = statusOK
	}
	fmt.Fprintln(out, renderStatusLine("Running", runningKind, fmt.Sprintf("pid %d", status.PID), colorize))
	fmt.Fprintln(out, renderStatusLine("Database", statusInfo, status.DBPath, colorize))
	fmt.Fprintln(out, renderStatusLine("Lock file", statusInfo, status.LockFilePath, colorize))

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader("Sweeper", colorize) {
		fmt.Fprintln(out, line)
	}
	sweepKind := statusOK
	sweepMsg := "idle"
	if status.Workflow.LastError != "" {
		sweepKind = statusWarn
		sweepMsg = status.Workflow.LastError
	} else if status.Workflow.LastSweep != "" {
		sweepMsg = fmt.Sprintf("last sweep %s, moved %d", displayTimestamp(status.Workflow.LastSweep), status.Workflow.SweptLeads)
	}
	fmt.Fprintln(out, renderStatusLine("Follow-up sweep", sweepKind, sweepMsg, colorize))

	fmt.Fprintln(out)
	for _, line := range renderSectionHeader(fmt.Sprintf("Leads (%d)", status.TotalLeads), colorize) {
		fmt.Fprintln(out, line)
	}
	keys := make([]string, 0, len(status.LeadCounts))
	for key := range status.LeadCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintln(out, renderStatusLine(key, statusInfo, fmt.Sprintf("%d", status.LeadCounts[key]), colorize))
	}
}
