package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Populate every type and report failures",
		Long: `The validate command populates every enumeration type, reporting
duplicate keys, invalid members and failing population routines. It exits
non-zero if any type fails.

Example:
  enumctl validate --file enums.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

func runValidate() error {
	src, err := loadSource()
	if err != nil {
		return err
	}

	var failed int
	for _, t := range src.types {
		if err := t.desc.Load(); err != nil {
			failed++
			printInfo("FAIL\t%s\t%v\n", t.desc.Name(), err)
			continue
		}
		keys, _ := t.desc.Keys()
		printInfo("ok\t%s\t%d members\n", t.desc.Name(), len(keys))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d types failed to populate", failed, len(src.types))
	}
	return nil
}
