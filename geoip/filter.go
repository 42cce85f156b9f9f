package geoip

// Filter returns the entries whose country code is in keep, preserving input
// order. Entries are not deduplicated: if the input carries several records
// for the same country, all of them survive.
func Filter(entries []Entry, keep CountrySet) (kept []Entry) {
	for _, entry := range entries {
		if keep.Contains(entry.CountryCode) {
			kept = append(kept, entry)
		}
	}

	return
}
