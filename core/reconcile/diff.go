package reconcile

import "sort"

// Diff partitions local and remote names. Inputs may be in any order and
// contain duplicates; every output sequence is sorted ascending.
func Diff(local, remote []string) DiffResult {
	localSet := toSet(local)
	remoteSet := toSet(remote)

	result := DiffResult{
		ToCreate: []string{},
		ToDelete: []string{},
		Kept:     []string{},
	}

	for name := range localSet {
		if _, ok := remoteSet[name]; ok {
			result.Kept = append(result.Kept, name)
		} else {
			result.ToCreate = append(result.ToCreate, name)
		}
	}
	for name := range remoteSet {
		if _, ok := localSet[name]; !ok {
			result.ToDelete = append(result.ToDelete, name)
		}
	}

	sort.Strings(result.ToCreate)
	sort.Strings(result.ToDelete)
	sort.Strings(result.Kept)
	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
