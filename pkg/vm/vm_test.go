/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackedboxes/erlinda/pkg/bytecode"
	"github.com/stackedboxes/erlinda/pkg/demo"
	"github.com/stackedboxes/erlinda/pkg/erlutil"
	"github.com/stackedboxes/erlinda/pkg/errs"
)

// runProgram runs module on a fresh VM and returns what it printed (one entry
// per printed value, without the trailing newline) and the error Run returned.
func runProgram(t *testing.T, module *bytecode.Module, mailboxCapacity int) ([]string, errs.Error) {
	t.Helper()

	mouth := &erlutil.MemoryMouth{}
	theVM := New(module, mouth)
	theVM.TraceTo = io.Discard
	if mailboxCapacity > 0 {
		theVM.MailboxCapacity = mailboxCapacity
	}

	err := theVM.Run()

	outputs := make([]string, len(mouth.Outputs))
	for i, output := range mouth.Outputs {
		outputs[i] = strings.TrimSuffix(output, "\n")
	}
	return outputs, err
}

// runDemo runs one of the demo programs.
func runDemo(t *testing.T, name string, mailboxCapacity int) ([]string, errs.Error) {
	t.Helper()

	module, err := demo.Build(name)
	require.Nil(t, err)
	return runProgram(t, module, mailboxCapacity)
}

func TestConstant(t *testing.T) {
	outputs, err := runDemo(t, "hello", 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(7)"}, outputs)
}

func TestRecursiveFib(t *testing.T) {
	// The demo's base cases make both fib(0) and fib(1) return 1, so the
	// sequence is shifted by one: fib(6) is 13, not 8.
	outputs, err := runDemo(t, "fib", 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(13)"}, outputs)
}

func TestSpawnAndReceive(t *testing.T) {
	// The two workers race, so the results can come in either order.
	outputs, err := runDemo(t, "workers", 0)
	require.Nil(t, err)
	assert.ElementsMatch(t, []string{"Int(89)", "Int(10946)"}, outputs)
}

func TestUnknownFunctionAbortsTheVM(t *testing.T) {
	outputs, err := runDemo(t, "badcall", 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no function named 'nope'")
	assert.Equal(t, errs.StatusCodeRuntimeError, err.ExitCode())
	assert.Empty(t, outputs)
}

func TestBackpressureDropsNothing(t *testing.T) {
	// A mailbox capacity much smaller than the number of messages forces the
	// flooder to block repeatedly. Every message must still arrive, in the
	// order it was sent.
	outputs, err := runDemo(t, "flood", 2)
	require.Nil(t, err)
	assert.Equal(t, []string{
		"Int(0)", "Int(1)", "Int(2)", "Int(3)", "Int(4)",
		"Int(5)", "Int(6)", "Int(7)", "Int(8)", "Int(9)",
	}, outputs)
}

func TestCallReturnSymmetry(t *testing.T) {
	// dupadd leaves two values on its stack at Return time, so the caller
	// gets both appended, in order, on top of what it already had.
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 3, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(5)),
		bytecode.Call("dupadd"),
		bytecode.Print(),
		bytecode.Print(),
		bytecode.Return(),
	}))
	m.AddFunction("dupadd", bytecode.NewFunction(1, 3, []bytecode.Instruction{
		bytecode.Dup(0),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Add(),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(6)", "Int(5)"}, outputs)
}

func TestSwapZeroIsANoOp(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.PushLiteral(bytecode.NewValueInt(2)),
		bytecode.Swap(0),
		bytecode.Print(),
		bytecode.Print(),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(2)", "Int(1)"}, outputs)
}

func TestDupTopOfSingleElementStack(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(3)),
		bytecode.Dup(0),
		bytecode.Add(),
		bytecode.Print(),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(6)"}, outputs)
}

func TestJumpIfEqualWithMismatchedTypes(t *testing.T) {
	// A string on top never equals an integer operand: no jump happens, but
	// the top is consumed all the same.
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueString("x")),
		bytecode.JumpIfEqual(4, bytecode.NewValueInt(0)),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Print(),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(1)"}, outputs)
}

func TestStackUnderflow(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Pop(),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "stack underflow in 'init'")
}

func TestStackOverflow(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.PushLiteral(bytecode.NewValueInt(2)),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "stack overflow in 'init'")
}

func TestAddWithNonIntegers(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.PushLiteral(bytecode.NewValueString("x")),
		bytecode.Add(),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "'Add' supports only integers")
}

func TestSendToUnknownPid(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValuePid(99)),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Send("m"),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no process with pid 99")
}

func TestTopLevelReturnWithLeftovers(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "top-level return from 'init'")
}

func TestSpawnWithTooFewArguments(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Spawn("worker"),
		bytecode.Return(),
	}))
	m.AddFunction("worker", bytecode.NewFunction(1, 1, []bytecode.Instruction{
		bytecode.Pop(),
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "calling 'worker' with 0 values on the stack, needs 1")
}

func TestRunWaitsForGrandchildren(t *testing.T) {
	// The child spawns a grandchild and exits immediately; Run must wait for
	// the grandchild's print anyway.
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Spawn("child"),
		bytecode.Pop(),
		bytecode.Return(),
	}))
	m.AddFunction("child", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Spawn("grandchild"),
		bytecode.Pop(),
		bytecode.Return(),
	}))
	m.AddFunction("grandchild", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValueInt(42)),
		bytecode.Print(),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Int(42)"}, outputs)
}

func TestPidsAreAllocatedSequentially(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Spawn("idle"),
		bytecode.Print(),
		bytecode.Spawn("idle"),
		bytecode.Print(),
		bytecode.Return(),
	}))
	m.AddFunction("idle", bytecode.NewFunction(0, 1, []bytecode.Instruction{
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{"Pid(1)", "Pid(2)"}, outputs)
}

func TestReceivePushesNameThenPayload(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(0, 3, []bytecode.Instruction{
		bytecode.Spawn("pinger"),
		bytecode.Pop(),
		bytecode.Receive(),
		bytecode.Pop(), // discard the payload, leaving the name on top
		bytecode.Print(),
		bytecode.Return(),
	}))
	m.AddFunction("pinger", bytecode.NewFunction(0, 2, []bytecode.Instruction{
		bytecode.PushLiteral(bytecode.NewValuePid(0)),
		bytecode.PushLiteral(bytecode.NewValueInt(1)),
		bytecode.Send("ping"),
		bytecode.Return(),
	}))

	outputs, err := runProgram(t, m, 0)
	require.Nil(t, err)
	assert.Equal(t, []string{`Str("ping")`}, outputs)
}

func TestMissingInit(t *testing.T) {
	m := bytecode.NewModule()

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "no function named 'init'")
}

func TestInitMustTakeNoArguments(t *testing.T) {
	m := bytecode.NewModule()
	m.AddFunction("init", bytecode.NewFunction(1, 1, []bytecode.Instruction{
		bytecode.Return(),
	}))

	_, err := runProgram(t, m, 0)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "'init' must take no arguments")
}

func TestDebugTraceExecution(t *testing.T) {
	module, buildErr := demo.Build("hello")
	require.Nil(t, buildErr)

	trace := &bytes.Buffer{}
	theVM := New(module, &erlutil.MemoryMouth{})
	theVM.DebugTraceExecution = true
	theVM.TraceTo = trace

	err := theVM.Run()
	require.Nil(t, err)

	traced := trace.String()
	assert.Contains(t, traced, "vm: spawned pid 0 running 'init'")
	assert.Contains(t, traced, "pid 0: execute PushLiteral(Int(7)) with stack []")
	assert.Contains(t, traced, "pid 0: execute Print with stack [Int(7)]")
	assert.Contains(t, traced, "vm: pid 0 exited")
	assert.Contains(t, traced, "vm: no processes left, terminating")
}
