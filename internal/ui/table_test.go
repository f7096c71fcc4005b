package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_alignsColumns(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "TAG", "MESSAGE")
	tbl.Row("TODO", "fix parsing")
	tbl.Row("FIXME", "short")
	if err := tbl.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	// All MESSAGE cells start at the same column.
	col := strings.Index(lines[0], "MESSAGE")
	if col < 0 {
		t.Fatalf("header missing MESSAGE: %q", lines[0])
	}
	if strings.Index(lines[1], "fix parsing") != col {
		t.Errorf("row 1 not aligned with header:\n%s", buf.String())
	}
	if strings.Index(lines[2], "short") != col {
		t.Errorf("row 2 not aligned with header:\n%s", buf.String())
	}
}
