package profiling

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledProfilerWritesNothing(t *testing.T) {
	var p Profiler
	p.Start("exe").Stop()

	var buf bytes.Buffer
	p.Summarize(&buf)
	assert.Empty(t, buf.String())
}

func TestNestedSpans(t *testing.T) {
	var p Profiler
	p.Enable()

	outer := p.Start("abs")
	p.Start("canonicalize").Stop()
	outer.Stop()
	p.Start("roots").Stop()

	var buf bytes.Buffer
	p.Summarize(&buf)
	out := buf.String()

	assert.Contains(t, out, "--- Timing Profile ---")
	assert.Contains(t, out, "- abs (")
	assert.Contains(t, out, "  - canonicalize (")
	assert.Contains(t, out, "- roots (")
	assert.Less(t, strings.Index(out, "- abs"), strings.Index(out, "- roots"))
}

func TestOutOfOrderStop(t *testing.T) {
	var p Profiler
	p.Enable()

	outer := p.Start("outer")
	inner := p.Start("inner")
	outer.Stop()
	inner.Stop()
	p.Start("next").Stop()

	var buf bytes.Buffer
	p.Summarize(&buf)
	assert.Contains(t, buf.String(), "\n- next (")
}

func TestGlobalReset(t *testing.T) {
	Enable()
	Start("exe").Stop()
	Reset()

	var buf bytes.Buffer
	Summarize(&buf)
	assert.Empty(t, buf.String())
}
