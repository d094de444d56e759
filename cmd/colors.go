package cmd

import (
	"github.com/fatih/color"
	"github.com/khanhnv2901/gqlaudit/internal/checker"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatStatusWithColor(status string) string {
	switch status {
	case checker.StatusOK:
		return colorSuccess(status)
	case checker.StatusFailed:
		return colorError(status)
	}
	return status
}

// formatPolicyWithColor flags the policy under which introspection is never checked.
func formatPolicyWithColor(policy string) string {
	if policy == checker.IntrospectionAllow.String() {
		return colorWarn(policy)
	}
	return policy
}
