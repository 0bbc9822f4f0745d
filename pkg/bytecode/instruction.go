/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import "fmt"

// OpCode is an opcode in the Erlinda Virtual Machine.
type OpCode uint8

const (
	// OpPrint pops the top of the stack and emits it to the print sink.
	OpPrint OpCode = iota

	// OpPushLiteral pushes a copy of a literal value.
	OpPushLiteral

	// OpPop discards the top of the stack.
	OpPop

	// OpDup pushes a copy of the i-th item from the top of the stack.
	OpDup

	// OpSwap exchanges the top of the stack with the i-th item from the top.
	// Swapping with depth 0 is a no-op.
	OpSwap

	// OpJump jumps, unconditionally, to an instruction in this function.
	OpJump

	// OpJumpIfEqual pops the top of the stack and jumps if it is equal to the
	// instruction's operand.
	OpJumpIfEqual

	// OpAdd pops the top two values (both must be integers) and pushes their
	// sum. Arithmetic wraps around, two's-complement style.
	OpAdd

	// OpMul pops the top two values (both must be integers) and pushes their
	// product. Arithmetic wraps around, two's-complement style.
	OpMul

	// OpCall calls another function, popping its arg count worth of values
	// from the stack to become the callee's initial stack.
	OpCall

	// OpReturn returns to the calling function, appending this function's
	// stack onto the caller's stack. Returning from the top-level frame
	// terminates the process.
	OpReturn

	// OpSpawn starts a new process, popping the callee's arg count worth of
	// values to become its initial stack, and pushes the new process's PID.
	OpSpawn

	// OpReceive blocks until a message arrives on this process's mailbox,
	// then pushes the message name and the payload (payload on top).
	OpReceive

	// OpSend pops a payload and a PID and delivers a named message to the
	// mailbox of the process with that PID, blocking while it is full.
	OpSend
)

// An Instruction is one instruction of an Erlinda function: an opcode plus
// whatever operands that opcode needs. Instructions are immutable once their
// Function is added to a Module.
type Instruction struct {
	// Op is the opcode of this instruction.
	Op OpCode

	// Index is the stack depth operand of OpDup and OpSwap.
	Index int

	// Dest is the jump target of OpJump and OpJumpIfEqual.
	Dest int

	// Operand is the literal of OpPushLiteral and the comparison value of
	// OpJumpIfEqual.
	Operand Value

	// Name is the function name of OpCall and OpSpawn, and the message name
	// of OpSend.
	Name string
}

// Print creates a Print instruction.
func Print() Instruction {
	return Instruction{Op: OpPrint}
}

// PushLiteral creates a PushLiteral instruction pushing v.
func PushLiteral(v Value) Instruction {
	return Instruction{Op: OpPushLiteral, Operand: v}
}

// Pop creates a Pop instruction.
func Pop() Instruction {
	return Instruction{Op: OpPop}
}

// Dup creates a Dup instruction duplicating the item at depth i from the top.
func Dup(i int) Instruction {
	return Instruction{Op: OpDup, Index: i}
}

// Swap creates a Swap instruction exchanging the top with the item at depth i.
func Swap(i int) Instruction {
	return Instruction{Op: OpSwap, Index: i}
}

// Jump creates an unconditional Jump to the instruction at dest.
func Jump(dest int) Instruction {
	return Instruction{Op: OpJump, Dest: dest}
}

// JumpIfEqual creates a JumpIfEqual instruction jumping to dest if the popped
// top of the stack equals v.
func JumpIfEqual(dest int, v Value) Instruction {
	return Instruction{Op: OpJumpIfEqual, Dest: dest, Operand: v}
}

// Add creates an Add instruction.
func Add() Instruction {
	return Instruction{Op: OpAdd}
}

// Mul creates a Mul instruction.
func Mul() Instruction {
	return Instruction{Op: OpMul}
}

// Call creates a Call instruction calling the function called name.
func Call(name string) Instruction {
	return Instruction{Op: OpCall, Name: name}
}

// Return creates a Return instruction.
func Return() Instruction {
	return Instruction{Op: OpReturn}
}

// Spawn creates a Spawn instruction spawning a process running the function
// called name.
func Spawn(name string) Instruction {
	return Instruction{Op: OpSpawn, Name: name}
}

// Receive creates a Receive instruction.
func Receive() Instruction {
	return Instruction{Op: OpReceive}
}

// Send creates a Send instruction delivering a message called name.
func Send(name string) Instruction {
	return Instruction{Op: OpSend, Name: name}
}

// String converts the instruction to a string, in the format used by the
// execution trace and the disassembler. Like Value.String, it must be stable:
// tests snapshot it.
func (instr Instruction) String() string {
	switch instr.Op {
	case OpPrint:
		return "Print"
	case OpPushLiteral:
		return fmt.Sprintf("PushLiteral(%v)", instr.Operand)
	case OpPop:
		return "Pop"
	case OpDup:
		return fmt.Sprintf("Dup(%v)", instr.Index)
	case OpSwap:
		return fmt.Sprintf("Swap(%v)", instr.Index)
	case OpJump:
		return fmt.Sprintf("Jump(%v)", instr.Dest)
	case OpJumpIfEqual:
		return fmt.Sprintf("JumpIfEqual(%v, %v)", instr.Dest, instr.Operand)
	case OpAdd:
		return "Add"
	case OpMul:
		return "Mul"
	case OpCall:
		return fmt.Sprintf("Call(%v)", instr.Name)
	case OpReturn:
		return "Return"
	case OpSpawn:
		return fmt.Sprintf("Spawn(%v)", instr.Name)
	case OpReceive:
		return "Receive"
	case OpSend:
		return fmt.Sprintf("Send(%v)", instr.Name)
	default:
		return fmt.Sprintf("<Unknown opcode %d>", instr.Op)
	}
}
