/******************************************************************************\
* The Erlinda Virtual Machine                                                  *
*                                                                              *
* Copyright 2024-2026 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The erlutil ("Erlinda utils") package contains assorted utilities used in
// various other Erlinda packages. Now, that's a clever way of having a "util"
// package without having a "util" package!
package erlutil
