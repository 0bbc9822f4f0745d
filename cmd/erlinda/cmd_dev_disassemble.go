/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stackedboxes/erlinda/pkg/bytecode"
	"github.com/stackedboxes/erlinda/pkg/demo"
	"github.com/stackedboxes/erlinda/pkg/errs"
)

var devDisassembleCmd = &cobra.Command{
	Use:   "disassemble <program>",
	Short: "Disassembles a demo program",
	Long:  `Disassembles a demo program, function by function.`,
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		module, err := demo.Build(args[0])
		if err != nil {
			errs.ReportAndExit(err)
		}
		bytecode.DisassembleModule(module, os.Stdout)
	},
}
