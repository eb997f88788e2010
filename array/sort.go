package array

import "sort"

// Sort reorders the occupied records in place using a three-way comparator
// (negative when a < b, zero when equal, positive when a > b). The sort is
// unstable: no order is guaranteed among records the comparator deems equal.
// The buffer is not reallocated, so outstanding iterators stay valid but
// observe the new order.
func (a *Array) Sort(cmp func(x, y []byte) int) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if a.size < 2 {
		return nil
	}
	sort.Sort(&recordView{a: a, cmp: cmp, tmp: make([]byte, a.elemSize)})
	return nil
}

// recordView adapts the occupied records to sort.Interface. Swaps go through
// a single scratch record.
type recordView struct {
	a   *Array
	cmp func(x, y []byte) int
	tmp []byte
}

func (v *recordView) Len() int { return v.a.size }

func (v *recordView) Less(i, j int) bool {
	return v.cmp(v.rec(i), v.rec(j)) < 0
}

func (v *recordView) Swap(i, j int) {
	ri, rj := v.rec(i), v.rec(j)
	copy(v.tmp, ri)
	copy(ri, rj)
	copy(rj, v.tmp)
}

func (v *recordView) rec(i int) []byte {
	es := v.a.elemSize
	return v.a.data[i*es : (i+1)*es]
}
