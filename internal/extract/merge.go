package extract

// Merge applies a partial correction patch to previously extracted
// fields: every key present in patch overwrites (or adds) that key,
// everything else is untouched. Neither input is mutated; applying the
// same patch twice yields the same result as once.
func Merge(existing, patch Fields) Fields {
	merged := make(Fields, len(existing)+len(patch))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
