package console

import (
	"errors"
	"strings"
	"testing"

	"gol-halt/internal/core"
	"gol-halt/pkg/sims/life"
)

func newLife(t *testing.T, cfg map[string]string) core.Sim {
	t.Helper()
	sim, err := core.New("life", cfg)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestRunPrintsUntilHalt(t *testing.T) {
	sim := newLife(t, map[string]string{"w": "6", "h": "6", "pattern": life.PatternBlinker})
	var out strings.Builder
	res, err := Run(sim, &out, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Halted || res.Generations != 2 {
		t.Fatalf("result=%+v, expected halt at generation 2", res)
	}

	frames := strings.Split(strings.TrimSuffix(out.String(), Separator+"\n"), Separator+"\n")
	if len(frames) != 3 {
		t.Fatalf("printed %d frames, expected seed plus two generations", len(frames))
	}
	rows := strings.Split(strings.TrimSuffix(frames[0], "\n"), "\n")
	if len(rows) != 8 {
		t.Fatalf("frame has %d rows, expected 8", len(rows))
	}
	for _, row := range rows {
		if len(row) != 10 || row[0] != '[' || row[len(row)-1] != ']' {
			t.Fatalf("malformed row %q", row)
		}
	}
	if frames[0] != frames[2] {
		t.Fatal("blinker's last frame must match its seed frame")
	}
}

func TestRunStopsAtCap(t *testing.T) {
	sim := newLife(t, map[string]string{"w": "30", "h": "30", "pattern": life.PatternGlider})
	var out strings.Builder
	res, err := Run(sim, &out, Options{MaxGenerations: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.Halted || res.Generations != 10 {
		t.Fatalf("result=%+v, expected cap at generation 10", res)
	}
	if n := strings.Count(out.String(), Separator); n != 11 {
		t.Fatalf("printed %d separators, expected 11", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunReturnsWriteErrors(t *testing.T) {
	sim := newLife(t, nil)
	if _, err := Run(sim, failWriter{}, Options{}); err == nil {
		t.Fatal("write failures must surface")
	}
}
