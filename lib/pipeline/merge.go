package pipeline

// changeLog поколения локальных изменений записей снимка.
// Используется под мьютексом хранилища.
type changeLog struct {
	gen     uint64
	touched map[string]uint64 // map[itemID]поколение последнего изменения
}

func (l *changeLog) touch(id string) {
	if l.touched == nil {
		l.touched = map[string]uint64{}
	}
	l.gen++
	l.touched[id] = l.gen
}

// changedSince запись менялась локально после поколения start
func (l *changeLog) changedSince(id string, start uint64) bool {
	return l.touched[id] > start
}

// mergeSnapshot список из хранилища, прочитанный начиная с поколения start.
// Записи, измененные локально после start, берутся из снимка:
// прочитанная версия для них может быть старее.
func mergeSnapshot[T any](fetched, local []T, id func(item T) string, l *changeLog, start uint64) []T {
	localByID := make(map[string]T, len(local))
	for _, item := range local {
		localByID[id(item)] = item
	}
	fetchedIDs := make(map[string]struct{}, len(fetched))
	for _, item := range fetched {
		fetchedIDs[id(item)] = struct{}{}
	}

	result := make([]T, 0, len(fetched))
	// созданные во время чтения
	for _, item := range local {
		itemID := id(item)
		if _, ok := fetchedIDs[itemID]; !ok && l.changedSince(itemID, start) {
			result = append(result, item)
		}
	}
	for _, item := range fetched {
		itemID := id(item)
		if localItem, ok := localByID[itemID]; ok && l.changedSince(itemID, start) {
			result = append(result, localItem)
			continue
		}
		result = append(result, item)
	}
	return result
}
