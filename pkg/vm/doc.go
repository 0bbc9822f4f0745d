/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The vm package is the heart of Erlinda: the process engine that interprets
// bytecode, and the VM supervisor that spawns processes, routes messages
// between their mailboxes, and detects when every process has exited.
//
// Each process is one goroutine with a private call stack; processes share no
// mutable state and communicate only through mailboxes. The supervisor's lock
// protects just the PID counter and the mailbox registry, and is never held
// across a blocking send or receive.
package vm
