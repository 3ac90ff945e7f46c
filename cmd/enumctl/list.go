package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List enumeration types",
		Long: `The list command prints every enumeration type compiled into enumctl,
followed by the types declared in the definitions file, if any.

Listing does not populate anything; the state column shows whether a type
has been loaded yet.

Example:
  enumctl list
  enumctl list --file enums.yml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

type typeView struct {
	Name        string `json:"name"`
	Origin      string `json:"origin"`
	State       string `json:"state"`
	Description string `json:"description,omitempty"`
}

func runList() error {
	src, err := loadSource()
	if err != nil {
		return err
	}

	views := make([]typeView, 0, len(src.types))
	for _, t := range src.types {
		views = append(views, typeView{
			Name:        t.desc.Name(),
			Origin:      t.origin,
			State:       t.desc.State().String(),
			Description: t.description,
		})
	}

	if jsonOut {
		return printJSON(views)
	}
	for _, v := range views {
		if v.Description != "" {
			printInfo("%s\t%s\t%s\t# %s\n", v.Name, v.Origin, v.State, v.Description)
			continue
		}
		printInfo("%s\t%s\t%s\n", v.Name, v.Origin, v.State)
	}
	return nil
}
