/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeRuntimeError indicates that the hosted program was malformed
	// and the VM aborted while running it.
	StatusCodeRuntimeError = 1

	// StatusCodeTestSuiteError indicates a failure while running Erlinda's own
	// test suite.
	StatusCodeTestSuiteError = 2

	// StatusCodeErlindaToolError indicates some tool-level failure, like an
	// unreadable config file.
	StatusCodeErlindaToolError = 3

	// StatusCodeBadUsage indicates some user error in the usage of the erlinda
	// tool (e.g., passing the wrong number of arguments, or passing a
	// nonexisting command-line flag).
	StatusCodeBadUsage = 50

	// StatusCodeICE indicates an Internal Consistency Error.
	StatusCodeICE = 125
)
