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

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Commands for Erlinda developers",
	Long:  `Commands meant for those developing Erlinda itself.`,
}
