package recognize

// sortedVertices returns wg's vertex set in ascending order, so the
// obstruction search (and the certificates it builds) is deterministic
// regardless of Go's randomized map iteration order — spec.md §8's
// "fixed input adjacency order, byte-identical output" property.
func sortedVertices(wg *workGraph) []int {
	out := wg.vertices()
	insertionSortInts(out)
	return out
}

// insertionSortInts sorts small int slices in place without pulling in the
// sort package for what's always a handful of vertices per bicomp.
func insertionSortInts(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
