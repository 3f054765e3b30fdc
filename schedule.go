// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"container/heap"
	"strconv"

	"github.com/pkg/errors"
)

// readyQueue is a min-heap of node indices.
type readyQueue []int

func (q readyQueue) Len() int            { return len(q) }
func (q readyQueue) Less(i, j int) bool  { return q[i] < q[j] }
func (q readyQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *readyQueue) Push(x interface{}) { *q = append(*q, x.(int)) }
func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Schedule linearizes a LoweredGraph into a Program.
//
// Nodes are topologically sorted; among nodes whose dependencies are all
// scheduled, the first declared is scheduled first, so that scheduling the
// same graph always yields the same program. Each node gets the register slot
// matching its position in the instruction list.
//
// A cycle or an out of range reference in lg is reported as an
// *InvariantError: graphs produced by Lower from a finalized Circuit have
// neither.
//
func Schedule(lg *LoweredGraph) (*Program, error) {
	n := len(lg.Nodes)
	check := func(r Ref, what string) error {
		switch {
		case r.Type == RefInput && r.Index >= 0 && r.Index < len(lg.Inputs):
		case r.Type == RefGate && r.Index >= 0 && r.Index < n:
		default:
			return errors.WithStack(&InvariantError{what + ": invalid reference " + r.String()})
		}
		return nil
	}

	// pending[i] is the number of unscheduled node operands of node i.
	pending := make([]int, n)
	users := make([][]int, n)
	for i, nd := range lg.Nodes {
		for _, r := range [2]Ref{nd.A, nd.B} {
			if err := check(r, nd.Name); err != nil {
				return nil, err
			}
			if r.Type == RefGate {
				pending[i]++
				users[r.Index] = append(users[r.Index], i)
			}
		}
	}
	for _, o := range lg.Outputs {
		if err := check(o.Src, o.Name); err != nil {
			return nil, err
		}
	}

	var q readyQueue
	for i := range lg.Nodes {
		if pending[i] == 0 {
			q = append(q, i)
		}
	}
	heap.Init(&q)

	slot := make([]int, n)
	order := make([]int, 0, n)
	for q.Len() > 0 {
		i := heap.Pop(&q).(int)
		slot[i] = len(order)
		order = append(order, i)
		for _, u := range users[i] {
			if pending[u]--; pending[u] == 0 {
				heap.Push(&q, u)
			}
		}
	}
	if len(order) != n {
		i := 0
		for pending[i] == 0 {
			i++
		}
		return nil, errors.WithStack(&InvariantError{"dependency cycle through NAND node " +
			strconv.Quote(lg.Nodes[i].Name)})
	}

	operand := func(r Ref) Operand {
		if r.Type == RefInput {
			return Imm(r.Index)
		}
		return Reg(slot[r.Index])
	}

	p := &Program{
		instrs:   make([]Instruction, n),
		inputs:   append([]string(nil), lg.Inputs...),
		inSlots:  make(map[string]int, len(lg.Inputs)),
		outputs:  make([]string, len(lg.Outputs)),
		outSlots: make(map[string]Operand, len(lg.Outputs)),
	}
	for s, i := range order {
		nd := lg.Nodes[i]
		p.instrs[s] = Instruction{Out: s, A: operand(nd.A), B: operand(nd.B)}
	}
	for i, name := range lg.Inputs {
		p.inSlots[name] = i
	}
	for i, o := range lg.Outputs {
		p.outputs[i] = o.Name
		p.outSlots[o.Name] = operand(o.Src)
	}
	return p, nil
}
