// Package files turns uploaded source files into the annotated code context
// that is embedded into a generated prompt.
package files

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/utils"
)

// DefaultExtension is used for names without a '.'.
const DefaultExtension = "txt"

const previewChars = 200

// ErrNotUTF8 marks an upload whose bytes are not valid UTF-8 text.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// Upload is one uploaded handle. Stream is rewound after every read so it can
// be consumed again.
type Upload struct {
	Name   string
	Stream io.ReadSeeker
}

// FileRecord describes one decoded upload. Size is the number of characters
// (code points) in Content at creation time.
type FileRecord struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	Extension string `json:"type"`
	Content   string `json:"content"`
}

// Preview returns the first 200 characters, with "..." when truncated.
func (r FileRecord) Preview() string {
	if r.Size <= previewChars {
		return r.Content
	}

	runes := []rune(r.Content)
	return string(runes[:previewChars]) + "..."
}

// Language is the display label for the record's extension.
func (r FileRecord) Language() string {
	return utils.Language(r.Extension)
}

// Failure is an upload that was skipped.
type Failure struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

func (f Failure) Error() string {
	return fmt.Sprintf("failed to process %s: %v", f.Name, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Aggregate is the result of one aggregation pass: the concatenated text in
// upload order, the records that made it in, and the files that were skipped.
type Aggregate struct {
	Text     string
	Records  []FileRecord
	Failures []Failure
}

// Count is the number of aggregated files.
func (a Aggregate) Count() int {
	return len(a.Records)
}

// Banner is the boundary line written before each file's content.
func Banner(name string) string {
	return fmt.Sprintf("--- FILE: %s ---", name)
}

// Extension returns the lower-cased suffix after the last '.', or
// DefaultExtension when name contains no '.'.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return DefaultExtension
	}

	return strings.ToLower(name[idx+1:])
}

// AggregateUploads decodes every upload in order. A file that cannot be read
// or decoded is recorded as a Failure and the rest are still processed.
func AggregateUploads(uploads []Upload) Aggregate {
	agg := Aggregate{Records: []FileRecord{}}
	if len(uploads) == 0 {
		return agg
	}

	var text strings.Builder
	for _, up := range uploads {
		rec, err := readRecord(up)
		if err != nil {
			agg.Failures = append(agg.Failures, Failure{Name: up.Name, Err: err})
			continue
		}

		agg.Records = append(agg.Records, rec)
		text.WriteString("\n\n")
		text.WriteString(Banner(rec.Name))
		text.WriteString("\n")
		text.WriteString(rec.Content)
	}

	agg.Text = text.String()
	return agg
}

func readRecord(up Upload) (rec FileRecord, err error) {
	if up.Stream == nil {
		return FileRecord{}, errors.New("no content stream")
	}

	defer func() {
		if _, seekErr := up.Stream.Seek(0, io.SeekStart); seekErr != nil && err == nil {
			err = fmt.Errorf("rewind: %w", seekErr)
		}
	}()

	data, err := io.ReadAll(up.Stream)
	if err != nil {
		return FileRecord{}, fmt.Errorf("read: %w", err)
	}

	if !utf8.Valid(data) {
		return FileRecord{}, ErrNotUTF8
	}

	content := string(data)
	return FileRecord{
		Name:      up.Name,
		Size:      utf8.RuneCountInString(content),
		Extension: Extension(up.Name),
		Content:   content,
	}, nil
}
