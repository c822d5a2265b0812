package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/farmaon/farmaclass/internal/cli"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and debug the classification rule set",
	}
	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesCheckCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print rules in evaluation order",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _, set, _, err := loadEngine()
			if err != nil {
				return err
			}

			for _, r := range set.All() {
				fmt.Printf("%4d  %-20s → %s\n", r.Priority, r.Key, r.TargetNode)
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d rules.", set.Len())))
			return nil
		},
	}
}

func rulesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name> [description]",
		Short: "Dry-classify a single product name for rule debugging",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			engine, _, _, _, err := loadEngine()
			if err != nil {
				return err
			}

			name := args[0]
			description := strings.Join(args[1:], " ")
			result := engine.Classify(name, description)

			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Node:"), result.NodeKey)
			fmt.Printf("%s %s / %s\n", cli.BoldStyle.Render("Category:"),
				result.CategoryKey, orDash(result.SubcategoryKey))
			fmt.Printf("%s %.2f\n", cli.BoldStyle.Render("Confidence:"), result.Confidence)
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Why:"), result.Justification)
			if len(result.MatchedRules) > 0 {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Candidates:"),
					strings.Join(result.MatchedRules, ", "))
			}
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
