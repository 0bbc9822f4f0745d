/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"fmt"

	"github.com/stackedboxes/erlinda/pkg/bytecode"
	"github.com/stackedboxes/erlinda/pkg/errs"
)

// A frame contains the information needed at runtime about an ongoing
// function call: the function, the program counter into its instructions,
// and the value stack, which is private to this frame.
type frame struct {
	// function is the Function running.
	function *bytecode.Function

	// ip is the instruction pointer, which points to the next instruction to
	// be executed (it's an index into function.Instructions).
	ip int

	// stack is this frame's value stack. Never grows past
	// function.StackSize.
	stack []bytecode.Value
}

// A process is one independently scheduled unit of execution: a call stack of
// frames plus the receive endpoint of its mailbox. Each process runs on its
// own goroutine; the only thing it shares with the rest of the VM is the
// supervisor it calls into to spawn and to route messages.
type process struct {
	// vm is the supervisor this process belongs to.
	vm *VM

	// pid identifies this process.
	pid bytecode.PID

	// mailbox is this process's inbound message queue. The receive endpoint
	// is exclusively ours; senders get their endpoint from the supervisor's
	// registry.
	mailbox mailbox

	// frames is the stack of call frames. It has one entry for every function
	// that has started running but hasn't returned yet.
	frames []*frame

	// The current call frame (the one on top of process.frames).
	frame *frame
}

// pushFrame makes function the active frame, with args as its initial stack.
func (p *process) pushFrame(function *bytecode.Function, args []bytecode.Value) {
	stack := make([]bytecode.Value, len(args), function.StackSize)
	copy(stack, args)
	f := &frame{
		function: function,
		stack:    stack,
	}
	p.frames = append(p.frames, f)
	p.frame = f
}

// run interprets instructions until the process returns from its top-level
// frame. It is the body of the process's goroutine; a non-nil return aborts
// the whole VM.
func (p *process) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errs.Runtime); ok {
				err = e
				return
			}
			if e, ok := r.(error); ok {
				err = errs.NewICE("unexpected error: %T (%v)", r, e)
				return
			}
			err = errs.NewICE("unexpected error type: %T (%v)", r, r)
		}
	}()
	defer p.vm.exit(p.pid)

	for {
		f := p.frame
		if f.ip >= len(f.function.Instructions) {
			p.runtimeError("fell off the end of '%v'", f.function.Name)
		}
		instr := f.function.Instructions[f.ip]
		p.vm.traceln("pid %v: execute %v with stack %v", p.pid, instr, f.stack)
		f.ip++

		switch instr.Op {
		case bytecode.OpPrint:
			p.vm.print(p.pop())

		case bytecode.OpPushLiteral:
			p.push(instr.Operand)

		case bytecode.OpPop:
			p.pop()

		case bytecode.OpDup:
			if len(f.stack) <= instr.Index {
				p.runtimeError("'%v' reaches below the bottom of the stack in '%v'", instr, f.function.Name)
			}
			p.push(f.stack[len(f.stack)-instr.Index-1])

		case bytecode.OpSwap:
			if len(f.stack) <= instr.Index {
				p.runtimeError("'%v' reaches below the bottom of the stack in '%v'", instr, f.function.Name)
			}
			if instr.Index != 0 {
				l := len(f.stack)
				f.stack[l-1], f.stack[l-instr.Index-1] = f.stack[l-instr.Index-1], f.stack[l-1]
			}

		case bytecode.OpJump:
			f.ip = instr.Dest

		case bytecode.OpJumpIfEqual:
			if bytecode.ValuesEqual(p.pop(), instr.Operand) {
				f.ip = instr.Dest
			}

		case bytecode.OpAdd:
			a := p.pop()
			b := p.pop()
			if !a.IsInt() || !b.IsInt() {
				p.runtimeError("'Add' supports only integers, got %v and %v", a, b)
			}
			p.push(bytecode.NewValueInt(a.AsInt() + b.AsInt()))

		case bytecode.OpMul:
			a := p.pop()
			b := p.pop()
			if !a.IsInt() || !b.IsInt() {
				p.runtimeError("'Mul' supports only integers, got %v and %v", a, b)
			}
			p.push(bytecode.NewValueInt(a.AsInt() * b.AsInt()))

		case bytecode.OpCall:
			callee := p.vm.module.GetFunction(instr.Name)
			if callee == nil {
				p.runtimeError("no function named '%v'", instr.Name)
			}
			args := p.splitArgs(callee)
			p.pushFrame(callee, args)

		case bytecode.OpReturn:
			returned := f.stack
			p.frames = p.frames[:len(p.frames)-1]
			if len(p.frames) == 0 {
				if len(returned) != 0 {
					p.runtimeError("top-level return from '%v' with %v values on the stack", f.function.Name, len(returned))
				}
				return nil
			}
			parent := p.frames[len(p.frames)-1]
			if len(parent.stack)+len(returned) > parent.function.StackSize {
				p.runtimeError("stack overflow in '%v'", parent.function.Name)
			}
			parent.stack = append(parent.stack, returned...)
			p.frame = parent

		case bytecode.OpSpawn:
			callee := p.vm.module.GetFunction(instr.Name)
			if callee == nil {
				p.runtimeError("no function named '%v'", instr.Name)
			}
			args := p.splitArgs(callee)
			pid, err := p.vm.spawn(instr.Name, args)
			if err != nil {
				panic(err)
			}
			p.push(bytecode.NewValuePid(pid))

		case bytecode.OpReceive:
			select {
			case msg := <-p.mailbox:
				p.push(bytecode.NewValueString(msg.Name))
				p.push(msg.Payload)
			case <-p.vm.ctx.Done():
				return p.vm.ctx.Err()
			}

		case bytecode.OpSend:
			payload := p.pop()
			pidValue := p.pop()
			if !pidValue.IsPid() {
				p.runtimeError("'%v' needs a pid, got %v", instr, pidValue)
			}
			sender, ok := p.vm.sender(pidValue.AsPid())
			if !ok {
				p.runtimeError("no process with pid %v", pidValue.AsPid())
			}
			select {
			case sender <- Message{Name: instr.Name, Payload: payload}:
			case <-p.vm.ctx.Done():
				return p.vm.ctx.Err()
			}

		default:
			p.runtimeError("unexpected instruction: %v", instr)
		}
	}
}

// splitArgs detaches the top callee.ArgCount values from the active frame's
// stack, to become the callee's initial stack.
func (p *process) splitArgs(callee *bytecode.Function) []bytecode.Value {
	f := p.frame
	if len(f.stack) < callee.ArgCount {
		p.runtimeError("calling '%v' with %v values on the stack, needs %v", callee.Name, len(f.stack), callee.ArgCount)
	}
	args := f.stack[len(f.stack)-callee.ArgCount:]
	f.stack = f.stack[:len(f.stack)-callee.ArgCount]
	return args
}

// push pushes a value onto the active frame's stack. Overflowing the frame's
// stack size is a fatal error in the hosted program.
func (p *process) push(v bytecode.Value) {
	f := p.frame
	if len(f.stack) >= f.function.StackSize {
		p.runtimeError("stack overflow in '%v'", f.function.Name)
	}
	f.stack = append(f.stack, v)
}

// pop pops a value from the active frame's stack and returns it. Underflowing
// is a fatal error in the hosted program.
func (p *process) pop() bytecode.Value {
	f := p.frame
	if len(f.stack) == 0 {
		p.runtimeError("stack underflow in '%v'", f.function.Name)
	}
	v := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	return v
}

// runtimeError stops this process and aborts the whole VM, reporting a
// malformed hosted program with a given message and fmt.Printf-like
// arguments.
func (p *process) runtimeError(format string, a ...any) {
	panic(errs.NewRuntime("pid %v: %v", p.pid, fmt.Sprintf(format, a...)))
}
