/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package bytecode

import (
	"sort"

	"github.com/stackedboxes/erlinda/pkg/errs"
)

// A Function is a sequence of instructions that can be executed. When it
// begins, its stack will contain ArgCount values (the arguments, leftmost at
// the bottom), and the stack can grow to a maximum of StackSize values.
//
// Functions are logically immutable and shared by reference: any number of
// processes may be running the same Function concurrently.
type Function struct {
	// Name is the name under which this Function was added to its Module.
	// Used in diagnostics and in the disassembly; set by Module.AddFunction.
	Name string

	// ArgCount is the number of arguments this Function takes.
	ArgCount int

	// StackSize is the maximum number of values this Function's stack can
	// hold at any point.
	StackSize int

	// Instructions is the code of this Function.
	Instructions []Instruction
}

// NewFunction creates a new Function. Panics with an ICE if the argument
// count and stack size are inconsistent: arguments live on the stack, so the
// stack must be able to hold at least all of them.
func NewFunction(argCount, stackSize int, instructions []Instruction) *Function {
	if argCount < 0 {
		panic(errs.NewICE("function created with negative arg count %v", argCount))
	}
	if stackSize < argCount {
		panic(errs.NewICE("function created with stack size %v smaller than arg count %v", stackSize, argCount))
	}
	return &Function{
		ArgCount:     argCount,
		StackSize:    stackSize,
		Instructions: instructions,
	}
}

// A Module represents a set of named functions: the whole of the program the
// VM runs. Modules are populated by the host before any process is started
// and are read-only during execution.
type Module struct {
	functions map[string]*Function
	interned  map[string]string
}

// NewModule creates a new, empty Module.
func NewModule() *Module {
	return &Module{
		functions: map[string]*Function{},
		interned:  map[string]string{},
	}
}

// AddFunction adds a new function to this module. Adding a function with the
// same name as an earlier one overwrites it (no stable callers exist until
// execution begins). All string operands of the function (literals, function
// names, message names) are interned, so that every copy of a given string
// made at run time shares one backing instance.
func (m *Module) AddFunction(name string, function *Function) {
	name = m.intern(name)
	function.Name = name

	for i := range function.Instructions {
		instr := &function.Instructions[i]
		switch instr.Op {
		case OpPushLiteral, OpJumpIfEqual:
			if instr.Operand.IsString() {
				instr.Operand = NewValueString(m.intern(instr.Operand.AsString()))
			}
		case OpCall, OpSpawn, OpSend:
			instr.Name = m.intern(instr.Name)
		}
	}

	m.functions[name] = function
}

// GetFunction looks up a function by exact name. Returns nil if there is no
// function with that name.
func (m *Module) GetFunction(name string) *Function {
	return m.functions[name]
}

// FunctionNames returns the names of all functions in the module, sorted.
func (m *Module) FunctionNames() []string {
	names := make([]string, 0, len(m.functions))
	for name := range m.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// intern returns the canonical instance of s.
func (m *Module) intern(s string) string {
	if canonical, ok := m.interned[s]; ok {
		return canonical
	}
	m.interned[s] = s
	return s
}
