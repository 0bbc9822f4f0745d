/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// DisassembleModule disassembles all functions of m, in name order, writing
// the output to out.
func DisassembleModule(m *Module, out io.Writer) {
	for i, name := range m.FunctionNames() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		DisassembleFunction(m.GetFunction(name), out)
	}
}

// DisassembleFunction disassembles a single function, writing the output to
// out.
func DisassembleFunction(function *Function, out io.Writer) {
	fmt.Fprintf(out, "== %v (args: %v, stack: %v) ==\n", function.Name, function.ArgCount, function.StackSize)
	for offset, instr := range function.Instructions {
		fmt.Fprintf(out, "%05v %v\n", offset, instr)
	}
}
