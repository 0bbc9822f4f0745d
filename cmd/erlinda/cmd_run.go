/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/stackedboxes/erlinda/pkg/demo"
	"github.com/stackedboxes/erlinda/pkg/erlutil"
	"github.com/stackedboxes/erlinda/pkg/errs"
	"github.com/stackedboxes/erlinda/pkg/vm"
)

// runConfig is the structure mirroring the --config TOML file.
type runConfig struct {
	// Trace enables the execution trace, just like --trace.
	Trace bool

	// MailboxCapacity, when positive, overrides the VM's mailbox capacity.
	MailboxCapacity int `toml:"mailbox-capacity"`
}

// flagRunTrace is the value of the --trace flag of the `run` command.
var flagRunTrace bool

// flagRunConfig is the value of the --config flag of the `run` command.
var flagRunConfig string

var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Runs one of the demo programs",
	Long:  `Runs one of the demo programs. Use 'erlinda list' to see which ones exist.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		module, err := demo.Build(args[0])
		if err != nil {
			errs.ReportAndExit(err)
		}

		theVM := vm.New(module, erlutil.NewWriterMouth(os.Stdout))
		theVM.DebugTraceExecution = flagRunTrace

		if flagRunConfig != "" {
			conf, err := readRunConfig(flagRunConfig)
			if err != nil {
				errs.ReportAndExit(err)
			}
			if conf.Trace {
				theVM.DebugTraceExecution = true
			}
			if conf.MailboxCapacity > 0 {
				theVM.MailboxCapacity = conf.MailboxCapacity
			}
		}

		errs.ReportAndExit(theVM.Run())
	},
}

func init() {
	runCmd.Flags().BoolVarP(&flagRunTrace, "trace", "t",
		false, "Trace the execution as it runs")

	runCmd.Flags().StringVarP(&flagRunConfig, "config", "c",
		"", "Path to a TOML file with VM options")
}

// readRunConfig reads the VM options from a TOML file.
func readRunConfig(path string) (*runConfig, errs.Error) {
	tomlSource, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewErlindaTool("reading config file %v: %v", path, err)
	}
	tomlConfigData := &runConfig{}
	err = toml.Unmarshal(tomlSource, &tomlConfigData)
	if err != nil {
		return nil, errs.NewErlindaTool("parsing config file %v: %v", path, err)
	}

	return tomlConfigData, nil
}
