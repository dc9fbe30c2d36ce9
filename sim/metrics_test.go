package sim

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Print_WritesSummaryToStdout(t *testing.T) {
	// GIVEN metrics from a finished run
	m := NewMetrics()
	m.Boardings = 5
	m.Exits = 5
	m.Moves = 12
	m.DoorCycles = 7
	m.PeakOnboard = 3
	m.Ticks = 12

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// WHEN Print is called
	m.Print(time.Now())

	// Restore stdout and read captured output
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	// THEN the summary appears on stdout
	assert.Contains(t, output, "Simulation Metrics")
	assert.Contains(t, output, "Passengers delivered : 5")
	assert.Contains(t, output, "Car moves            : 12")
	assert.Contains(t, output, "Peak onboard         : 3")
}
