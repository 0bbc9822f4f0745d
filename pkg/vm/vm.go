/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/stackedboxes/erlinda/pkg/bytecode"
	"github.com/stackedboxes/erlinda/pkg/erlutil"
	"github.com/stackedboxes/erlinda/pkg/errs"
)

// initFunctionName is the function the VM spawns to seed the execution.
const initFunctionName = "init"

// VM is an Erlinda Virtual Machine: the supervisor owning the module being
// executed, the PID allocator, and the mailbox registry. It spawns processes
// and waits until the last of them has exited.
type VM struct {
	// Set DebugTraceExecution to true to make the VM emit a trace line for
	// every instruction executed, every process spawned, and the final
	// termination. Must be set before calling Run.
	DebugTraceExecution bool

	// TraceTo is where the execution trace goes. Defaults to the standard
	// output. Must be set before calling Run.
	TraceTo io.Writer

	// MailboxCapacity is how many undelivered messages each process mailbox
	// holds before senders block. Must be set before calling Run.
	MailboxCapacity int

	// module is the program being executed.
	module *bytecode.Module

	// out is where values printed by the hosted program go.
	out erlutil.Mouth

	// printMu serializes prints from concurrently running processes.
	printMu sync.Mutex

	// mu protects nextPID and mailboxes. It is held only to allocate a PID,
	// to mutate the registry, or to clone a sender endpoint -- never across
	// a blocking operation.
	mu        sync.Mutex
	nextPID   bytecode.PID
	mailboxes map[bytecode.PID]mailbox

	// group tracks one goroutine per live process. Its counter doubles as the
	// quiescence signal: it is incremented synchronously inside spawn, before
	// the spawning instruction completes, so it cannot reach zero while any
	// live process could still spawn another.
	group *errgroup.Group

	// ctx is canceled when some process hits a fatal error, which unparks
	// every process blocked on a mailbox so the whole VM can abort.
	ctx context.Context

	// trace is TraceTo behind a mutex, so concurrent processes don't tear
	// trace lines. Set by Run.
	trace io.Writer
}

// New creates a new Virtual Machine that will execute module, sending the
// hosted program's printed values to out.
func New(module *bytecode.Module, out erlutil.Mouth) *VM {
	return &VM{
		TraceTo:         os.Stdout,
		MailboxCapacity: DefaultMailboxCapacity,
		module:          module,
		out:             out,
		mailboxes:       map[bytecode.PID]mailbox{},
	}
}

// Run seeds the execution by spawning a process running the init function,
// then blocks until every process has exited. Returns nil if all of them
// returned from their top-level frames, or the error that aborted the
// execution otherwise.
func (vm *VM) Run() errs.Error {
	function := vm.module.GetFunction(initFunctionName)
	if function == nil {
		return errs.NewRuntime("no function named '%v'", initFunctionName)
	}
	if function.ArgCount != 0 {
		return errs.NewRuntime("'%v' must take no arguments, takes %v", initFunctionName, function.ArgCount)
	}

	vm.trace = erlutil.NewSyncWriter(vm.TraceTo)

	group, ctx := errgroup.WithContext(context.Background())
	vm.group = group
	vm.ctx = ctx

	if _, err := vm.spawn(initFunctionName, nil); err != nil {
		return err
	}

	if err := group.Wait(); err != nil {
		if erlErr, ok := err.(errs.Error); ok {
			return erlErr
		}
		return errs.NewICE("process failed with an unexpected error: %v", err)
	}

	vm.traceln("vm: no processes left, terminating")
	return nil
}

// spawn starts a new process running the function called name, with args as
// its initial stack. It returns the new process's PID as soon as the process
// is registered, possibly before it has executed anything.
func (vm *VM) spawn(name string, args []bytecode.Value) (bytecode.PID, errs.Error) {
	function := vm.module.GetFunction(name)
	if function == nil {
		return 0, errs.NewRuntime("no function named '%v'", name)
	}
	if len(args) != function.ArgCount {
		return 0, errs.NewRuntime("spawning '%v': got %v arguments, want %v", name, len(args), function.ArgCount)
	}

	vm.mu.Lock()
	pid := vm.nextPID
	vm.nextPID++
	mbox := make(mailbox, vm.MailboxCapacity)
	vm.mailboxes[pid] = mbox
	vm.mu.Unlock()

	vm.traceln("vm: spawned pid %v running '%v'", pid, name)

	p := &process{
		vm:      vm,
		pid:     pid,
		mailbox: mbox,
	}
	p.pushFrame(function, args)
	vm.group.Go(p.run)

	return pid, nil
}

// exit removes the process pid from the mailbox registry. Called by the
// process itself, on its way out.
func (vm *VM) exit(pid bytecode.PID) {
	vm.mu.Lock()
	delete(vm.mailboxes, pid)
	vm.mu.Unlock()
	vm.traceln("vm: pid %v exited", pid)
}

// sender returns the sender endpoint of the mailbox of the process pid, or
// false if no such process is alive.
func (vm *VM) sender(pid bytecode.PID) (chan<- Message, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	mbox, ok := vm.mailboxes[pid]
	return mbox, ok
}

// print emits one printed value to the print sink, as one whole line.
func (vm *VM) print(v bytecode.Value) {
	vm.printMu.Lock()
	defer vm.printMu.Unlock()
	vm.out.Say(v.String() + "\n")
	vm.out.Flush()
}

// traceln emits one line to the execution trace, if tracing is enabled.
func (vm *VM) traceln(format string, a ...any) {
	if !vm.DebugTraceExecution {
		return
	}
	fmt.Fprintf(vm.trace, format+"\n", a...)
}
