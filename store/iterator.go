package store

import (
	"bytes"
)

// drain reads all remaining items of an iterator.
func drain(it Iterator) []Model {
	var res []Model
	for ; it.Valid(); it.Next() {
		res = append(res, Model{Key: it.Key(), Value: it.Value()})
	}
	return res
}

// merge combines the ascending parent models with the ascending cache
// overlay. Overlay entries win over the parent. Deleted entries hide the
// parent value.
func merge(parent []Model, overlay []keyer) []Model {
	res := make([]Model, 0, len(parent)+len(overlay))
	i, j := 0, 0
	for i < len(parent) || j < len(overlay) {
		var cmp int
		switch {
		case i == len(parent):
			cmp = 1
		case j == len(overlay):
			cmp = -1
		default:
			cmp = bytes.Compare(parent[i].Key, overlay[j].Key())
		}

		if cmp < 0 {
			res = append(res, parent[i])
			i++
			continue
		}
		if cmp == 0 {
			i++
		}
		if item, ok := overlay[j].(setItem); ok {
			res = append(res, Model{Key: item.key, Value: item.value})
		}
		j++
	}
	return res
}

func reverse(models []Model) []Model {
	for l, r := 0, len(models)-1; l < r; l, r = l+1, r-1 {
		models[l], models[r] = models[r], models[l]
	}
	return models
}
