package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Infof("hello %d", 1)
	l.With("svc").Warnf("slow %s", "op")
	l.With("svc").With("codec").Errorf("boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	wants := []string{"[INFO] hello 1", "[WARN] [svc] slow op", "[ERROR] [svc] [codec] boom"}
	for i, w := range wants {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
}
