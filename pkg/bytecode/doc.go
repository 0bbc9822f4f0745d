/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The bytecode package defines the program model of the Erlinda Virtual
// Machine: the values hosted programs compute with, the instructions they are
// made of, and the functions and modules that group those instructions.
//
// Everything here is constructed by the host before execution starts and is
// read-only from that point on. Functions are shared by reference between all
// the processes running them.
package bytecode
