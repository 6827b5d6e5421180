// Package boot holds the simulated BIOS boot sequence.
// The shell plays the script line by line with per-line delays; progress
// bar frames overwrite the previous bar instead of appending, which is
// what Transcript implements.
package boot

import (
	"strings"
	"time"
)

// Message is one scripted boot line.
type Message struct {
	Text  string
	Delay time.Duration
	Flash bool // brighten the screen for this step (stand-in for the PC speaker beep)
}

// Sequence is the boot script, in play order.
var Sequence = []Message{
	{Text: "MARCIN_BIOS v4.20.69", Delay: 100 * time.Millisecond, Flash: true},
	{Text: "Copyright (C) 1989-2025 Marcin Industries", Delay: 50 * time.Millisecond},
	{Text: "", Delay: 200 * time.Millisecond},
	{Text: "CPU: INTEL 80486DX @ 66MHz........OK", Delay: 80 * time.Millisecond, Flash: true},
	{Text: "RAM: 640K BASE, 15360K EXTENDED...OK", Delay: 100 * time.Millisecond, Flash: true},
	{Text: "FPU: DETECTED", Delay: 60 * time.Millisecond},
	{Text: "", Delay: 150 * time.Millisecond},
	{Text: "PRIMARY MASTER: QUANTUM FIREBALL 1.2GB", Delay: 80 * time.Millisecond},
	{Text: "PRIMARY SLAVE:  NONE", Delay: 40 * time.Millisecond},
	{Text: "SECONDARY MASTER: CREATIVE CD-ROM 4X", Delay: 60 * time.Millisecond},
	{Text: "", Delay: 200 * time.Millisecond},
	{Text: "CHECKING MEMORY", Delay: 100 * time.Millisecond},
	{Text: ".....", Delay: 400 * time.Millisecond, Flash: true},
	{Text: " 16384K OK", Delay: 100 * time.Millisecond, Flash: true},
	{Text: "", Delay: 200 * time.Millisecond},
	{Text: "LOADING MARCIN_DEV.EXE", Delay: 150 * time.Millisecond},
	{Text: "█", Delay: 100 * time.Millisecond},
	{Text: "██", Delay: 100 * time.Millisecond},
	{Text: "███", Delay: 100 * time.Millisecond},
	{Text: "████", Delay: 100 * time.Millisecond},
	{Text: "█████", Delay: 100 * time.Millisecond},
	{Text: "██████", Delay: 100 * time.Millisecond, Flash: true},
	{Text: "███████", Delay: 100 * time.Millisecond},
	{Text: "████████", Delay: 100 * time.Millisecond},
	{Text: "█████████", Delay: 100 * time.Millisecond},
	{Text: "██████████ COMPLETE!", Delay: 200 * time.Millisecond, Flash: true},
	{Text: "", Delay: 300 * time.Millisecond},
	{Text: "STARTING SYSTEM...", Delay: 400 * time.Millisecond, Flash: true},
}

// Transcript accumulates played boot lines.
type Transcript struct {
	lines []string
}

// Append plays one message into the transcript.
// A bar frame (text starting with █) replaces the previous line when
// that line is also a bar frame, so the bar animates in place.
func (t *Transcript) Append(text string) {
	if strings.HasPrefix(text, "█") && len(t.lines) > 0 &&
		strings.HasPrefix(t.lines[len(t.lines)-1], "█") {
		t.lines[len(t.lines)-1] = text
		return
	}
	t.lines = append(t.lines, text)
}

// String renders the transcript as played so far.
func (t *Transcript) String() string {
	return strings.Join(t.lines, "\n")
}
