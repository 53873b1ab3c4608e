package history

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"
)

// ExportData is the JSON document written by ExportJSON.
type ExportData struct {
	ExportedAt time.Time `json:"exported_at"`
	Count      int       `json:"count"`
	Stats      Stats     `json:"stats"`
	Entries    []Entry   `json:"entries"`
}

func ExportJSON(w io.Writer, entries []Entry, stats Stats, now time.Time) error {
	data := ExportData{
		ExportedAt: now.UTC(),
		Count:      len(entries),
		Stats:      stats,
		Entries:    entries,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)

	header := []string{"id", "created_at", "direction", "source", "original", "result", "elapsed_us"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.CreatedAt.UTC().Format(time.RFC3339),
			string(e.Direction),
			string(e.Source),
			e.Original,
			e.Result,
			strconv.FormatInt(e.Elapsed.Microseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
