// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (t *core[K, V]) Print(printData bool) int {
	return t.Fprint(os.Stdout, printData)
}

// Fprint - write the ASCII graphic to w, returns the depth of the tree
func (t *core[K, V]) Fprint(w io.Writer, printData bool) int {
	return t.printTree(w, t.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (t *core[K, V]) printTree(w io.Writer, p handle, prefix string, br branch, printData bool) int {
	if nilNode == p {
		return 0
	}
	l := t.links[p]
	rd := 0
	ld := 0
	if nilNode != l.right {
		s := "       "
		if left == br {
			s = "|      "
		}
		rd = t.printTree(w, l.right, prefix+s, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nilNode != l.up {
		up = t.items[l.up].key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v h:%d w:%d s:%d\n", t.items[p].key, t.items[p].value, up, l.height, l.weight, l.size)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", t.items[p].key, up)
	}
	if nilNode != l.left {
		s := "       "
		if right == br {
			s = "|      "
		}
		ld = t.printTree(w, l.left, prefix+s, left, printData)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
