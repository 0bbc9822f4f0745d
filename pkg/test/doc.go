/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The test package implements the runner for Erlinda's end-to-end test suite:
// the TOML-defined test cases living under test/suite, each of which runs one
// of the demo programs on a fresh VM and checks what it printed and how it
// exited.
package test
