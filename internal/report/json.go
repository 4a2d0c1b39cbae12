// Package report renders a run summary for machine consumption.
package report

import (
	"fmt"
	"io"

	"github.com/valyala/fastjson"

	"github.com/five82/logsift/internal/analyzer"
)

// JSON encodes s as a single JSON object:
//
//	{"file":"app.log","total_lines":3,"matched_lines":1,
//	 "level_counts":[{"level":"ERROR","count":2},{"level":"INFO","count":1}]}
//
// matched_lines is present only when a filter was active, and level_counts
// keeps the summary's sort order.
func JSON(path string, s analyzer.Summary) []byte {
	var a fastjson.Arena

	obj := a.NewObject()
	obj.Set("file", a.NewString(path))
	obj.Set("total_lines", a.NewNumberInt(s.TotalLines))
	if s.FiltersActive {
		obj.Set("matched_lines", a.NewNumberInt(s.MatchedLines))
	}

	counts := a.NewArray()
	for i, c := range s.Counts() {
		row := a.NewObject()
		row.Set("level", a.NewString(c.Level.String()))
		row.Set("count", a.NewNumberInt(c.Count))
		counts.SetArrayItem(i, row)
	}
	obj.Set("level_counts", counts)

	return obj.MarshalTo(nil)
}

// WriteJSON writes the JSON summary followed by a newline.
func WriteJSON(w io.Writer, path string, s analyzer.Summary) error {
	out := append(JSON(path, s), '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
