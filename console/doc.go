/*
Package console draws AVL trees to a terminal, for debugging purposes.

Trees are drawn sideways, with the root at the left margin and right subtrees
above left subtrees:

	    ┌── 30
	20
	    └── 10

Nodes leaning to one side (balance factor ±1) are colored differently from
balanced nodes. Key labels are measured in terminal columns according to
UAX #11 (East Asian Width), so wide characters do not break the layout.

BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
