/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackedboxes/erlinda/pkg/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the demo programs",
	Long:  `Lists the demo programs the erlinda tool can run.`,
	Args:  cobra.ExactArgs(0),

	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range demo.Names() {
			fmt.Println(name)
		}
	},
}
