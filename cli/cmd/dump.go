package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"github.com/vincentchina/crunchx"
	"gopkg.in/yaml.v3"
)

var (
	dumpFormat string

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed and resolved grammar to stdout instead of enumerating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rulesFile
			if path == "" {
				path = crunchx.DefaultRulesFile
			}

			session := crunchx.NewSession()
			session.Logger = newLogger()
			if err := session.LoadFile(path); err != nil {
				return err
			}
			outline, err := session.Outline()
			if err != nil {
				return err
			}

			switch dumpFormat {
			case "yaml":
				out, err := yaml.Marshal(outline)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			case "repr":
				fmt.Println(repr.String(outline, repr.Indent("  ")))
			default:
				return paramError(cmd, fmt.Errorf("unknown dump format: %s", dumpFormat))
			}
			return nil
		},
	}
)

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output format: yaml or repr")
	rootCmd.AddCommand(dumpCmd)
}
