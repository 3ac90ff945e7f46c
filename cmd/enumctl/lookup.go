package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/enumkit/pkg/enumfile"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <type> <value>",
		Short: "Print the first member declared with a value",
		Long: `The lookup command finds a member of a value enumeration by value.

The argument is read as a YAML scalar and compared strictly, so 1 is an
integer and will not match a member declared with "1".

Example:
  enumctl lookup HTTPRequestMethod PUT
  enumctl lookup HTTPStatus 404 --file enums.yml
  enumctl lookup Flags '"1"' --file enums.yml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
}

func runLookup(args []string) error {
	src, err := loadSource()
	if err != nil {
		return err
	}
	t, err := src.get(args[0])
	if err != nil {
		return err
	}

	v, err := enumfile.ParseValue(args[1])
	if err != nil {
		return err
	}
	m, err := findByValue(t, v)
	if err != nil {
		return err
	}
	return printMember(viewOf(m))
}
