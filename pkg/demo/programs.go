/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package demo

import (
	"github.com/stackedboxes/erlinda/pkg/bytecode"
)

// buildHello builds the smallest possible demo: print one constant.
func buildHello() *bytecode.Module {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(7)),
		bytecode.Print(),
		bytecode.Return(),
	}))
	return m
}

// buildFib builds the recursive Fibonacci demo: compute fib(6) and print it.
//
// The base cases are quirky on purpose: both fib(0) and fib(1) return 1, so
// the sequence is shifted by one and fib(6) is 13. That's what the very first
// Erlinda program did, and the demo keeps it.
func buildFib() *bytecode.Module {
	m := bytecode.NewModule()

	m.AddFunction("init", bytecode.NewFunction(0, 3, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(6)),
		bytecode.Call("fib"),
		bytecode.Call("show"),
		bytecode.Return(),
	}))

	m.AddFunction("show", bytecode.NewFunction(1, 1, []bytecode.Instruction{
		bytecode.Print(),
		bytecode.Return(),
	}))

	m.AddFunction("fib", fibFunction())

	return m
}

// fibFunction builds the fib function itself, shared by the fib and workers
// demos.
func fibFunction() *bytecode.Function {
	return bytecode.NewFunction(1, 5, []bytecode.Instruction{
		bytecode.Dup(0),
		bytecode.JumpIfEqual(16, bytecode.NewValueInt(0)),
		bytecode.Dup(0),
		bytecode.JumpIfEqual(16, bytecode.NewValueInt(1)),
		// call fib(n-1)
		bytecode.Dup(0),
		bytecode.PushLiteral(bytecode.NewValueInt(-1)),
		bytecode.Add(),
		bytecode.Call("fib"),
		// call fib(n-2)
		bytecode.Dup(1),
		bytecode.PushLiteral(bytecode.NewValueInt(-2)),
		bytecode.Add(),
		bytecode.Call("fib"),
		bytecode.Add(),
		// stack: [n, fib(n-1) + fib(n-2)]
		bytecode.Swap(1),
		bytecode.Pop(),
		bytecode.Return(),
		// return 1 (base case)
		bytecode.Pop(),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Return(),
	})
}

// buildWorkers builds the spawn-and-receive demo: init spawns two worker
// processes computing fib(10) and fib(20), then receives and prints their
// results as they come in (so the two prints can come in either order).
//
// The workers send their results to the literal Pid(0): init is always the
// first process spawned, and PIDs are allocated from 0.
func buildWorkers() *bytecode.Module {
	m := bytecode.NewModule()

	m.AddFunction("init", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(10)),
		bytecode.Spawn("fibproc"),
		bytecode.Pop(),
		bytecode.PushLiteral(bytecode.NewValueInt(20)),
		bytecode.Spawn("fibproc"),
		bytecode.Pop(),
		bytecode.Receive(),
		bytecode.Print(),
		bytecode.Pop(),
		bytecode.Receive(),
		bytecode.Print(),
		bytecode.Pop(),
		bytecode.Return(),
	}))

	m.AddFunction("fibproc", bytecode.NewFunction(1, 2, []bytecode.Instruction{
		bytecode.Call("fib"),
		bytecode.PushLiteral(bytecode.NewValuePid(0)),
		bytecode.Swap(1),
		bytecode.Send("result"),
		bytecode.Return(),
	}))

	m.AddFunction("fib", fibFunction())

	return m
}

// buildFlood builds the backpressure demo: a flooder process sends ten
// messages to init as fast as it can, blocking whenever init's mailbox is
// full, and init prints the payloads in order.
func buildFlood() *bytecode.Module {
	m := bytecode.NewModule()

	m.AddFunction("init", bytecode.NewFunction(0, 3, []bytecode.Instruction{
		bytecode.Spawn("flood"),
		bytecode.Pop(),
		bytecode.PushLiteral(bytecode.NewValueInt(0)),
		bytecode.Dup(0),
		bytecode.JumpIfEqual(11, bytecode.NewValueInt(10)),
		bytecode.Receive(),
		bytecode.Print(),
		bytecode.Pop(),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Add(),
		bytecode.Jump(3),
		bytecode.Pop(),
		bytecode.Return(),
	}))

	m.AddFunction("flood", bytecode.NewFunction(0, 3, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(0)),
		bytecode.Dup(0),
		bytecode.JumpIfEqual(9, bytecode.NewValueInt(10)),
		bytecode.PushLiteral(bytecode.NewValuePid(0)),
		bytecode.Dup(1),
		bytecode.Send("tick"),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Add(),
		bytecode.Jump(1),
		bytecode.Pop(),
		bytecode.Return(),
	}))

	return m
}

// buildBadCall builds a deliberately broken program: init calls a function
// that doesn't exist, so the VM aborts with a runtime error.
func buildBadCall() *bytecode.Module {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Call("nope"),
		bytecode.Return(),
	}))
	return m
}
