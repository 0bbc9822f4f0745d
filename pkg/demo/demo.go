/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The demo package contains the demo programs that ship with Erlinda. There
// is no assembler or parser: the VM takes a fully constructed module, and
// these are the modules the erlinda tool knows how to construct.
package demo

import (
	"sort"

	"github.com/stackedboxes/erlinda/pkg/bytecode"
	"github.com/stackedboxes/erlinda/pkg/errs"
)

// builders maps demo program names to the functions constructing them.
var builders = map[string]func() *bytecode.Module{
	"hello":   buildHello,
	"fib":     buildFib,
	"workers": buildWorkers,
	"flood":   buildFlood,
	"badcall": buildBadCall,
}

// Names returns the names of all demo programs, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the demo program called name.
func Build(name string) (*bytecode.Module, errs.Error) {
	builder, ok := builders[name]
	if !ok {
		return nil, errs.NewBadUsage("no demo program named '%v'", name)
	}
	return builder(), nil
}
