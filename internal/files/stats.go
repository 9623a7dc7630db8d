package files

import "strings"

// AllowedExtensions are the upload types accepted at the HTTP boundary.
var AllowedExtensions = []string{
	"py", "js", "html", "css", "json", "md", "txt", "jsx", "ts", "tsx",
	"php", "java", "cpp", "c", "sql", "yaml", "yml", "xml", "sh", "bat",
}

var allowed = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllowedExtensions))
	for _, ext := range AllowedExtensions {
		m[ext] = struct{}{}
	}
	return m
}()

// IsAllowed reports whether name carries an accepted extension. Names without
// a suffix are rejected: the upload control filters on the suffix.
func IsAllowed(name string) bool {
	if !strings.Contains(name, ".") {
		return false
	}

	_, ok := allowed[Extension(name)]
	return ok
}

// TypeGroup lists the files of one extension.
type TypeGroup struct {
	Type  string   `json:"type"`
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// Summary is the upload overview shown before generation.
type Summary struct {
	Files      int         `json:"files"`
	TotalChars int         `json:"total_chars"`
	Types      int         `json:"types"`
	ByType     []TypeGroup `json:"by_type"`
}

// Stats summarizes records; groups keep first-seen order.
func Stats(records []FileRecord) Summary {
	s := Summary{Files: len(records), ByType: []TypeGroup{}}

	index := make(map[string]int)
	for _, r := range records {
		s.TotalChars += r.Size

		i, ok := index[r.Extension]
		if !ok {
			i = len(s.ByType)
			index[r.Extension] = i
			s.ByType = append(s.ByType, TypeGroup{Type: r.Extension})
		}
		s.ByType[i].Count++
		s.ByType[i].Files = append(s.ByType[i].Files, r.Name)
	}

	s.Types = len(s.ByType)
	return s
}
