package pathfinding

import (
	"container/heap"

	"github.com/milk9111/gridpath/grid"
)

// cellLess orders by fCost, then hCost.
func cellLess(a, b *grid.Cell) bool {
	fa, fb := a.FCost(), b.FCost()
	if fa != fb {
		return fa < fb
	}
	return a.HCost < b.HCost
}

type cellHeap []*grid.Cell

func (h cellHeap) Len() int           { return len(h) }
func (h cellHeap) Less(i, j int) bool { return cellLess(h[i], h[j]) }
func (h cellHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].HeapIndex = i
	h[j].HeapIndex = j
}
func (h *cellHeap) Push(x any) {
	c := x.(*grid.Cell)
	c.HeapIndex = len(*h)
	*h = append(*h, c)
}
func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.HeapIndex = -1
	*h = old[:n-1]
	return c
}

// OpenSet is an indexed min-heap of cells. Each cell records its slot in
// HeapIndex so membership checks and key updates do not search the heap.
type OpenSet struct {
	items cellHeap
}

func NewOpenSet(capacity int) *OpenSet {
	return &OpenSet{items: make(cellHeap, 0, capacity)}
}

func (o *OpenSet) Len() int {
	return len(o.items)
}

func (o *OpenSet) Push(c *grid.Cell) {
	heap.Push(&o.items, c)
}

// Pop removes the lowest cell. Popping an empty set panics.
func (o *OpenSet) Pop() *grid.Cell {
	if len(o.items) == 0 {
		panic("pathfinding: pop from empty open set")
	}
	return heap.Pop(&o.items).(*grid.Cell)
}

func (o *OpenSet) Contains(c *grid.Cell) bool {
	i := c.HeapIndex
	return i >= 0 && i < len(o.items) && o.items[i] == c
}

// Update restores heap order after c's costs changed.
func (o *OpenSet) Update(c *grid.Cell) {
	if !o.Contains(c) {
		return
	}
	heap.Fix(&o.items, c.HeapIndex)
}

func (o *OpenSet) Reset() {
	clear(o.items)
	o.items = o.items[:0]
}
