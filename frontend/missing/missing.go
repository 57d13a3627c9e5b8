package missing

import (
	"sort"

	"herbadmin/models"
)

// Differences fills in the missing quantity per row. A row without any
// shipment data counts as nothing shipped. The input is not modified.
func Differences(entries []models.MissingHerbEntry) []models.MissingHerbEntry {
	out := make([]models.MissingHerbEntry, len(entries))
	for i, entry := range entries {
		shipped := 0.0
		if entry.QuantityShipped != nil {
			shipped = *entry.QuantityShipped
		}
		entry.Difference = entry.QuantityOrdered - shipped
		out[i] = entry
	}
	return out
}

// Sort orders the worklist by herb name, then by customer display name.
func Sort(entries []models.MissingHerbEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].HerbName != entries[j].HerbName {
			return entries[i].HerbName < entries[j].HerbName
		}
		nameI := entries[i].FirstName + " " + entries[i].LastName
		nameJ := entries[j].FirstName + " " + entries[j].LastName
		return nameI < nameJ
	})
}
