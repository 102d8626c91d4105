package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vincentchina/crunchx"
)

var (
	rootCmd = &cobra.Command{
		Use:           "crunchx",
		Short:         "crunchx",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Generates every string derivable from a rules file, one per line, in a
deterministic order. Without flags, rules are read from crunchx.rul in the
current directory; the file is created with the built-in default rules if
it does not exist.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return paramError(cmd, fmt.Errorf("unknown argument: %s", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			if writeRules {
				if err := crunchx.WriteDefaultRules(crunchx.DefaultRulesFile); err != nil {
					return err
				}
				fmt.Println(fmt.Sprintf("Default rules written to %s", crunchx.DefaultRulesFile))
				return nil
			}

			path := rulesFile
			if path == "" {
				path = crunchx.DefaultRulesFile
				if _, err := os.Stat(path); os.IsNotExist(err) {
					if err := crunchx.WriteDefaultRules(path); err != nil {
						return err
					}
					logger.WithField("path", path).Debug("created default rules file")
				}
			}

			session := crunchx.NewSession()
			session.Logger = logger
			if err := session.LoadFile(path); err != nil {
				return err
			}
			out := bufio.NewWriter(os.Stdout)
			if err := session.Generate(out); err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return crunchx.Error{Kind: crunchx.WriteFileError, Message: fmt.Sprintf("error writing output: %s", err)}
			}
			return nil
		},
	}

	rulesFile  string
	writeRules bool
	verbose    bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&rulesFile, "file", "f", "", "path to the rules file (default "+crunchx.DefaultRulesFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&writeRules, "write-rules", "l", false, "write the built-in default rules to "+crunchx.DefaultRulesFile+" and exit")
	rootCmd.SetFlagErrorFunc(paramError)
	return rootCmd.Execute()
}

func newLogger() logrus.FieldLogger {
	logger := logrus.StandardLogger()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// paramError reports a bad argument the way the legacy tool did: the
// diagnostic line first, then the help text. The returned error carries the
// InvalidParam kind so main can derive the exit code without printing the
// message a second time.
func paramError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(os.Stderr, "ERROR:%s\n", err)
	_ = cmd.Help()
	return crunchx.Error{Kind: crunchx.InvalidParam, Message: err.Error()}
}
