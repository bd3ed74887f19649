package output

// FileRecord is one resolved file in a report.
type FileRecord struct {
	File     string `json:"file"`
	Root     string `json:"root,omitempty"`
	Excluded bool   `json:"excluded,omitempty"`
}

// Report is the top-level document for file resolution.
type Report struct {
	Files []FileRecord `json:"files"`
	Count int          `json:"count"`
}

// RootsReport is the top-level document for root discovery.
type RootsReport struct {
	Roots []string `json:"roots"`
	Count int      `json:"count"`
}
