package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWithWriter_Debug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, true)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Int("trials", 3).Msg("running demo")

	out := buf.String()
	if !strings.Contains(out, "running demo") {
		t.Errorf("debug output missing message: %q", out)
	}
	if !strings.Contains(out, "trials=3") {
		t.Errorf("debug output missing field: %q", out)
	}
}

func TestInitWithWriter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, false)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	log.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warning not written: %q", buf.String())
	}
}
