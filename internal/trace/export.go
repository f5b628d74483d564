package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/events"
)

// Summary describes one finished run.
type Summary struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Initial     []int     `json:"initial"`
	Final       []int     `json:"final"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	NoSwaps     int       `json:"no_swaps"`
	Steps       int       `json:"steps"`
	ElapsedMS   int64     `json:"elapsed_ms"`
}

func Summarize(res *driver.Result, steps []Step) Summary {
	s := Summary{
		ID:          res.SessionID,
		Algorithm:   res.Algorithm,
		Timestamp:   time.Now().UTC(),
		Initial:     res.Initial,
		Final:       res.Final,
		Comparisons: res.Comparisons,
		Swaps:       res.Swaps,
		Steps:       len(steps),
		ElapsedMS:   res.Elapsed.Milliseconds(),
	}
	for _, st := range steps {
		if st.Event.Kind == events.NoSwapConfirmed {
			s.NoSwaps++
		}
	}
	return s
}

// Row is the flat form of a step used by both exports.
type Row struct {
	Step        int    `json:"step"`
	Kind        string `json:"kind"`
	I           *int   `json:"i,omitempty"`
	J           *int   `json:"j,omitempty"`
	Value       *int   `json:"value,omitempty"`
	Name        string `json:"name,omitempty"`
	Comparisons int    `json:"comparisons"`
}

func toRow(s Step) Row {
	e := s.Event
	row := Row{Step: s.Index, Kind: e.Kind.String(), Name: e.Name, Comparisons: s.Comparisons}
	if e.I >= 0 {
		i := e.I
		row.I = &i
	}
	if e.J >= 0 {
		j := e.J
		row.J = &j
	}
	if e.Kind == events.ElementCreated || e.Kind == events.CounterUpdated {
		v := e.Value
		row.Value = &v
	}
	return row
}

func Rows(steps []Step) []Row {
	out := make([]Row, len(steps))
	for i, s := range steps {
		out[i] = toRow(s)
	}
	return out
}

var csvHeader = []string{"step", "kind", "i", "j", "value", "name", "comparisons"}

func WriteCSV(w io.Writer, steps []Step) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Rows(steps) {
		record := []string{
			strconv.Itoa(r.Step),
			r.Kind,
			optional(r.I),
			optional(r.J),
			optional(r.Value),
			r.Name,
			strconv.Itoa(r.Comparisons),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

type Document struct {
	Summary Summary   `json:"summary"`
	Steps   []Row     `json:"steps"`
	Curve   []float64 `json:"disorder"`
}

func NewDocument(summary Summary, steps []Step) Document {
	return Document{Summary: summary, Steps: Rows(steps), Curve: Disorder(steps)}
}

func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Export writes summary.json and events.csv into dir/<run id>/ and
// returns that directory.
func Export(dir string, doc Document, steps []Step) (string, error) {
	runDir := filepath.Join(dir, doc.Summary.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create run directory")
	}

	metaFile, err := os.Create(filepath.Join(runDir, "summary.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	if err := WriteJSON(metaFile, doc); err != nil {
		return "", errors.Wrap(err, "write summary")
	}

	csvFile, err := os.Create(filepath.Join(runDir, "events.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := WriteCSV(csvFile, steps); err != nil {
		return "", errors.Wrap(err, "write events")
	}
	return runDir, nil
}
