/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"github.com/stackedboxes/erlinda/pkg/bytecode"
)

// DefaultMailboxCapacity is how many undelivered messages a process mailbox
// holds before senders start blocking.
const DefaultMailboxCapacity = 10

// A Message is a named envelope delivered to a process mailbox: the name
// tells the receiver what the payload means.
type Message struct {
	// Name is the name of the message.
	Name string

	// Payload is the value carried by the message.
	Payload bytecode.Value
}

// A mailbox is the inbound message queue of one process. The channel gives us
// the exact semantics the VM needs: multiple producers, a single consumer,
// FIFO per producer, senders blocking when the buffer is full and the
// receiver blocking when it is empty.
type mailbox chan Message
