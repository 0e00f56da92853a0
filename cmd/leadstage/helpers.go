package main

import (
	"fmt"
	"strconv"
	"strings"

	"leadstage/internal/api"
	"leadstage/internal/textutil"
)

func parseLeadID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid lead id %q", arg)
	}
	return id, nil
}

func leadRow(lead api.Lead) []string {
	return []string{
		strconv.FormatInt(lead.ID, 10),
		textutil.Truncate(lead.CustomerName, 28),
		textutil.FormatPhone(lead.PhoneNumber),
		textutil.Truncate(lead.Status, 36),
		textutil.Truncate(lead.AssignedAgent, 20),
		displayTimestamp(lead.UpdatedAt),
	}
}

var leadHeaders = []string{"ID", "Customer", "Phone", "Status", "Agent", "Updated"}

var leadAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}

// displayTimestamp trims an RFC3339 timestamp down to minute precision for
// table output.
func displayTimestamp(value string) string {
	if len(value) >= 16 {
		return strings.Replace(value[:16], "T", " ", 1)
	}
	return value
}
