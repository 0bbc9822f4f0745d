/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInstructionString checks the rendering used by the trace and the
// disassembler. These strings are part of the tool's observable output, so
// changing them breaks snapshots.
func TestInstructionString(t *testing.T) {
	testCases := []struct {
		instr Instruction
		want  string
	}{
		{Print(), "Print"},
		{PushLiteral(NewValueInt(6)), "PushLiteral(Int(6))"},
		{Pop(), "Pop"},
		{Dup(0), "Dup(0)"},
		{Swap(1), "Swap(1)"},
		{Jump(16), "Jump(16)"},
		{JumpIfEqual(16, NewValueInt(0)), "JumpIfEqual(16, Int(0))"},
		{Add(), "Add"},
		{Mul(), "Mul"},
		{Call("fib"), "Call(fib)"},
		{Return(), "Return"},
		{Spawn("fibproc"), "Spawn(fibproc)"},
		{Receive(), "Receive"},
		{Send("result"), "Send(result)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.instr.String())
	}
}
