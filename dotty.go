package avl

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Sentinels are drawn as small empty circles.
func Tree2Dot[K, V any](tree *Tree[K, V], w io.Writer) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	stack := []*Node[K, V]{tree.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ID := ids.alloc(node)
		if !node.IsReal() {
			nodelist += fmt.Sprintf("\"%d\" %s;\n", ID, emptyNode())
			continue
		}
		label := fmt.Sprintf("%v\\nh=%d bf=%d", node.key, node.height, node.bf)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(node.bf))
		for _, child := range []*Node[K, V]{node.left, node.right} {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		stack = append(stack, node.right, node.left)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(bf int) string {
	s := ",style=filled,shape=circle,color=black"
	return s + fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[bf+1])
}

// fill colors for balance factors -1, 0, +1
var hexcolors = [...]string{"#FFCCAA", "#a3d7e4", "#CCDDFF"}
