package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/san-kum/sortviz/internal/run"
	"github.com/san-kum/sortviz/internal/seq"
)

func TestWriteTraceCSV(t *testing.T) {
	trace := []TraceStep{
		{Step: 1, Primary: 0, Secondary: 1, Disorder: 1},
		{Step: 2, Primary: 2, Secondary: -1, Disorder: 0},
	}

	var buf bytes.Buffer
	if err := WriteTraceCSV(&buf, trace); err != nil {
		t.Fatal(err)
	}

	want := "step,primary,secondary,disorder\n1,0,1,1\n2,2,-1,0\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestWriteTraceCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTraceCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "step,primary,secondary,disorder\n" {
		t.Errorf("csv = %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	rep := Report{
		Algorithm: "insertion",
		Direction: "ascending",
		Seed:      42,
		Steps:     1,
		Initial:   []int{1, 3, 2},
		Final:     []int{1, 2, 3},
		Metrics:   map[string]float64{"swaps": 1},
		Trace:     []TraceStep{{Step: 1, Primary: 1, Secondary: 2, Disorder: 0}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatal(err)
	}

	var out Report
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, rep) {
		t.Errorf("decoded = %+v, want %+v", out, rep)
	}
}

func TestWriteJSONNilTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, Report{Algorithm: "quick"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"trace": []`)) {
		t.Errorf("nil trace not written as an empty list:\n%s", buf.String())
	}
}

func TestDisorderSeries(t *testing.T) {
	got := DisorderSeries([]TraceStep{{Disorder: 3}, {Disorder: 1}, {Disorder: 0}})
	want := []float64{3, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("series = %v, want %v", got, want)
	}
}

func TestTraceObserver(t *testing.T) {
	s := seq.New(seq.Viewport{Width: 800, Height: 600, SidePad: 100, TopPad: 150})
	c := run.New(s, nil, nil)
	if err := c.Reset([]int{3, 1, 2}); err != nil {
		t.Fatal(err)
	}
	trace := NewTrace(s, c.Direction)
	c.AddObserver(trace)

	if _, err := c.Drive(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	want := []TraceStep{
		{Step: 1, Primary: 0, Secondary: 1, Disorder: 1},
		{Step: 2, Primary: 1, Secondary: 2, Disorder: 0},
	}
	if !reflect.DeepEqual(trace.Steps(), want) {
		t.Errorf("trace = %+v, want %+v", trace.Steps(), want)
	}
	if !trace.Completed() {
		t.Error("completion not observed")
	}

	trace.Reset()
	if len(trace.Steps()) != 0 || trace.Completed() {
		t.Error("reset did not clear the trace")
	}
}
