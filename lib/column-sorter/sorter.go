package columnsorter

import (
	"cmp"
	"recruitment-board/models"
	"slices"
)

// Sort устойчивая сортировка по рангу, входной список не меняется
func Sort[T any](items []T, rank func(item T) int) []T {
	result := slices.Clone(items)
	slices.SortStableFunc(result, func(a, b T) int {
		return cmp.Compare(rank(a), rank(b))
	})
	return result
}

// PriorityRank Urgente=0 ... Basse=3, неизвестный приоритет в конец
func PriorityRank(priority models.PostingPriority) int {
	return priority.Rank()
}
