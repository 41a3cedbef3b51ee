package types

// Status describes how a clipboard probe ended
type Status string

const (
	// StatusFound means the clipboard referenced at least one path
	StatusFound Status = "found"
	// StatusEmpty means the mechanism answered but held no file data
	StatusEmpty Status = "empty"
	// StatusUnavailable means every access mechanism failed
	StatusUnavailable Status = "unavailable"
	// StatusUnparseable means the mechanism answered with something that is not a file reference
	StatusUnparseable Status = "unparseable"
)

func (s Status) String() string {
	return string(s)
}

// PathResult is the outcome of a single clipboard read.
// Paths are reported verbatim: no normalization, existence check or deduplication.
type PathResult struct {
	Paths  []string `json:"paths"`
	Status Status   `json:"status"`
	Source string   `json:"source,omitempty"`
}

// Found builds a result for a non-empty path list. An empty list degrades to StatusEmpty.
func Found(source string, paths []string) *PathResult {
	if len(paths) == 0 {
		return Empty(source)
	}
	return &PathResult{Paths: paths, Status: StatusFound, Source: source}
}

// Empty builds a result for a mechanism that answered without file data
func Empty(source string) *PathResult {
	return &PathResult{Status: StatusEmpty, Source: source}
}

// Unavailable builds a result for a failed access mechanism
func Unavailable(source string) *PathResult {
	return &PathResult{Status: StatusUnavailable, Source: source}
}

// Unparseable builds a result for output that could not be read as a file reference
func Unparseable(source string) *PathResult {
	return &PathResult{Status: StatusUnparseable, Source: source}
}

// HasPaths reports whether the result carries any path
func (r *PathResult) HasPaths() bool {
	return r != nil && r.Status == StatusFound && len(r.Paths) > 0
}
