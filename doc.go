/*
Package avl implements an ordered dictionary as a height-balanced binary
search tree (AVL tree).

AVL Trees

An AVL tree keeps, for every node, the heights of its two subtrees within a
difference of one. This guarantees a height of O(log n) and therefore
logarithmic search, insertion and deletion. Besides the classic dictionary
operations, trees of this package support set-style operations on whole trees:

	Operation     |   Cost
	--------------+-----------------
	Search        |   O(log n)
	Insert        |   O(log n)
	Delete        |   O(log n)
	Join          |   O(|h1 − h2| + 1)
	Split         |   O(log n)
	Items         |   O(n)

Join merges two trees with a separating key, given that every key of the
first tree is less than the separator and every key of the second tree is
greater. Split is its inverse and partitions a tree at one of its nodes.
Both transfer ownership of nodes: the trees handed in are left empty.

Leaf positions are occupied by sentinel nodes of height −1. A node is real
if and only if its height is non-negative. Clients see sentinels only when
navigating the tree structure by hand (see Node.IsReal).

Trees are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package avl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
