package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/envelope"
	"github.com/nvandessel/envelopes/internal/simulation"
	"gopkg.in/yaml.v3"
)

var sample = simulation.SimulationResult{
	Seed:    42,
	Trials:  100000,
	Workers: 1,
	Outcomes: []simulation.Outcome{
		{Strategy: envelope.Reactive, Wins: 74961, Losses: 25039},
		{Strategy: envelope.Stubborn, Wins: 50123, Losses: 49877},
	},
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample, Options{}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	want := "The outcome for a reactive playstyle was 74961 wins and 25039 losses.\n" +
		"This comes to a winning percentage of 74.96%.\n" +
		"\n" +
		"The outcome for a stubborn playstyle was 50123 wins and 49877 losses.\n" +
		"This comes to a winning percentage of 50.12%.\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteText output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteText_Interval(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample, Options{Interval: true}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if got := strings.Count(buf.String(), "The 95% confidence interval is "); got != 2 {
		t.Errorf("expected 2 interval lines, got %d in %q", got, buf.String())
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, simulation.SimulationResult{}, Options{}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty result, got %q", buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, constants.FormatJSON, sample, Options{RunID: "run-1", Interval: true}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if doc.RunID != "run-1" || doc.Seed != 42 || doc.Trials != 100000 {
		t.Errorf("unexpected header: %+v", doc)
	}
	if len(doc.Outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(doc.Outcomes))
	}
	first := doc.Outcomes[0]
	if first.Strategy != "reactive" || first.WinPercent != 74.96 {
		t.Errorf("first outcome = %+v", first)
	}
	if first.Interval == nil || first.Interval.Low >= first.WinPercent || first.Interval.High <= first.WinPercent {
		t.Errorf("interval %+v should bracket %.2f", first.Interval, first.WinPercent)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, constants.FormatYAML, sample, Options{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	if len(doc.Outcomes) != 2 || doc.Outcomes[1].Strategy != "stubborn" || doc.Outcomes[1].Wins != 50123 {
		t.Errorf("unexpected document: %+v", doc)
	}
	if doc.Outcomes[1].Interval != nil {
		t.Error("interval should be omitted unless requested")
	}
	if strings.Contains(buf.String(), "run_id") {
		t.Error("empty run id should be omitted")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "csv", sample, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}
