package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/farmaon/farmaclass/internal/cli"
	"github.com/farmaon/farmaclass/internal/taxonomy"
)

func taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect the category taxonomy",
	}
	cmd.AddCommand(taxonomyListCmd())
	cmd.AddCommand(taxonomyValidateCmd())
	return cmd
}

func taxonomyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the category tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}

			for _, root := range registry.Roots() {
				fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("%s  %s", root.Key, root.DisplayName)))
				printChildren(registry, root.Key, "  ")
			}
			return nil
		},
	}
}

func printChildren(registry *taxonomy.Registry, key, indent string) {
	for _, child := range registry.Children(key) {
		fmt.Printf("%s%s  %s\n", indent, child.Key, cli.SubtleStyle.Render(child.DisplayName))
		printChildren(registry, child.Key, indent+"  ")
	}
}

func taxonomyValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the taxonomy definition",
		RunE: func(_ *cobra.Command, _ []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Taxonomy OK: %d nodes.", registry.Len())))
			return nil
		},
	}
}
