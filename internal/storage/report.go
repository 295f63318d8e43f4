package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// Report describes one completed headless run.
type Report struct {
	Algorithm string             `json:"algorithm"`
	Direction string             `json:"direction"`
	Seed      int64              `json:"seed"`
	Pattern   string             `json:"pattern"`
	Complete  bool               `json:"complete"`
	Steps     int                `json:"steps"`
	Initial   []int              `json:"initial"`
	Final     []int              `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
	Trace     []TraceStep        `json:"trace"`
}

var traceHeader = []string{"step", "primary", "secondary", "disorder"}

// WriteTraceCSV writes one row per step. Untouched roles are written as -1.
func WriteTraceCSV(w io.Writer, trace []TraceStep) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return err
	}
	for _, st := range trace {
		row := []string{
			strconv.Itoa(st.Step),
			strconv.Itoa(st.Primary),
			strconv.Itoa(st.Secondary),
			strconv.Itoa(st.Disorder),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rep as one indented document.
func WriteJSON(w io.Writer, rep Report) error {
	if rep.Trace == nil {
		rep.Trace = []TraceStep{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

// DisorderSeries returns the disorder after every step, for plotting.
func DisorderSeries(trace []TraceStep) []float64 {
	data := make([]float64, len(trace))
	for i, st := range trace {
		data[i] = float64(st.Disorder)
	}
	return data
}
