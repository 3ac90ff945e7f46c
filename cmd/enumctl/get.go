package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <type> <key>",
		Short: "Print the member registered under a key",
		Long: `The get command looks a member up by key. Keys are matched exactly
unless the type was declared case-insensitive.

Example:
  enumctl get HTTPRequestMethod GET
  enumctl get ExtendedStatus teapot --file enums.yml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	src, err := loadSource()
	if err != nil {
		return err
	}
	t, err := src.get(args[0])
	if err != nil {
		return err
	}

	m, err := t.desc.Entry(args[1])
	if err != nil {
		return err
	}
	return printMember(viewOf(m))
}

func printMember(v memberView) error {
	if jsonOut {
		return printJSON(v)
	}
	printInfo("%s\n", v)
	return nil
}
