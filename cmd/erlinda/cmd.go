/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "erlinda",
	SilenceUsage: true,
	Short:        "Erlinda is a virtual machine for concurrent message-passing programs",
	Long: `A small stack-based virtual machine in which programs are made of
processes: each one has its own private call stack, and they talk to
each other only by leaving messages in each other's mailboxes.`,
}

func init() {
	devCmd.AddCommand(devDisassembleCmd, devTestCmd)
	rootCmd.AddCommand(runCmd, listCmd, devCmd)
}
