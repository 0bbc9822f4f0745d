/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"
)

//
// The Error interface
//

// Error is an Erlinda error.
type Error interface {
	error
	ExitCode() int
}

//
// Runtime
//

// Runtime is an error caused by a malformed hosted program: an unknown
// function name, a type mismatch, a stack underflow or overflow, a message
// sent to a dead process, that kind of thing. The VM treats all of these as
// bugs in the hosted module and aborts the whole execution when one happens.
type Runtime struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewRuntime is a handy way to create a Runtime error.
func NewRuntime(format string, a ...any) *Runtime {
	return &Runtime{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	return "Runtime error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// ErlindaTool
//

// ErlindaTool is an error that happened when running the erlinda tool that
// doesn't fit any of the other error types. Could be, e.g., an error opening
// some config file.
type ErlindaTool struct {
	// Message contains a message explaining what went wrong.
	Message string
}

// NewErlindaTool is a handy way to create an ErlindaTool error.
func NewErlindaTool(format string, a ...any) *ErlindaTool {
	return &ErlindaTool{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ErlindaTool to a string. Fulfills the error interface.
func (e *ErlindaTool) Error() string {
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *ErlindaTool) ExitCode() int {
	return StatusCodeErlindaToolError
}

//
// TestSuite
//

// TestSuite is an error that happened when running the Erlinda test suite
// (i.e., when testing Erlinda itself).
type TestSuite struct {
	// TestCase contains the path to the test case that failed.
	TestCase string

	// Message contains a message explaining how the test failed.
	Message string
}

// NewTestSuite is a handy way to create a TestSuite error.
func NewTestSuite(testCase, format string, a ...any) *TestSuite {
	return &TestSuite{
		TestCase: testCase,
		Message:  fmt.Sprintf(format, a...),
	}
}

// Error converts the TestSuite to a string. Fulfills the error interface.
func (e *TestSuite) Error() string {
	return fmt.Sprintf("%v: %v", e.TestCase, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *TestSuite) ExitCode() int {
	return StatusCodeTestSuiteError
}

//
// BadUsage
//

// BadUsage is an error that happened because the erlinda tool was called in
// the wrong way (like incorrect command-line arguments).
type BadUsage struct {
	// Message contains a message explaining what happened.
	Message string
}

// NewBadUsage is a handy way to create a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return "Usage error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// ICE
//

// ICE is an Internal Consistency Error. Used to report some unexpected issue
// with the VM itself -- like when we find it is on a state it wasn't expected
// to be. It's always a bug in Erlinda, never in the hosted program.
type ICE struct {
	// Message contains some message to contextualize the situation in which the
	// error happened. Hopefully will be good enough to help fixing the bug.
	Message string
}

// NewICE is a handy way to create an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{
		Message: fmt.Sprintf(format, a...),
	}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal Consistency Error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}
