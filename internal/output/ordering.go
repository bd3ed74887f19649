package output

import (
	"sort"

	"rootfind/internal/detect"
)

// SortFileRecords sorts records by file path ASC.
func SortFileRecords(records []FileRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].File < records[j].File
	})
}

// NewReport builds a sorted Report from a resolution batch.
func NewReport(results map[string]detect.Result) Report {
	records := make([]FileRecord, 0, len(results))
	for file, res := range results {
		records = append(records, FileRecord{
			File:     file,
			Root:     res.Root,
			Excluded: res.Excluded,
		})
	}
	SortFileRecords(records)
	return Report{Files: records, Count: len(records)}
}

// NewRootsReport builds a RootsReport; roots are expected sorted already.
func NewRootsReport(roots []string) RootsReport {
	if roots == nil {
		roots = []string{}
	}
	return RootsReport{Roots: roots, Count: len(roots)}
}
