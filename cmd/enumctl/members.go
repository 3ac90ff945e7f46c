package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMembersCmd())
}

func newMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <type>",
		Short: "Print the members of a type in declaration order",
		Long: `The members command populates a type and prints one member per line:
its key, then its value for value enumerations.

Example:
  enumctl members Planet
  enumctl members HTTPStatus --file enums.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembers(args)
		},
	}
}

func runMembers(args []string) error {
	src, err := loadSource()
	if err != nil {
		return err
	}
	t, err := src.get(args[0])
	if err != nil {
		return err
	}

	members, err := t.desc.Entries()
	if err != nil {
		return err
	}

	views := make([]memberView, len(members))
	for i, m := range members {
		views[i] = viewOf(m)
	}
	if jsonOut {
		return printJSON(views)
	}
	for _, v := range views {
		printInfo("%s\n", v)
	}
	return nil
}
