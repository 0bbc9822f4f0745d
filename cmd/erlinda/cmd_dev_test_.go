/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"

	"github.com/stackedboxes/erlinda/pkg/errs"
	"github.com/stackedboxes/erlinda/pkg/test"
)

// flagDevTestSuite is the value of the --suite flag of the `dev test` command.
var flagDevTestSuite string

var devTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Run an Erlinda test suite",
	Long:  `Run an Erlinda test suite (i.e., meant to test Erlinda itself).`,
	Args:  cobra.ExactArgs(0),

	Run: func(cmd *cobra.Command, args []string) {
		errs.ReportAndExit(test.ExecuteSuite(flagDevTestSuite))
	},
}

func init() {
	devTestCmd.Flags().StringVarP(&flagDevTestSuite, "suite", "s",
		"./test/suite", "Path to the test suite to run")
}
