package output

import (
	"bytes"
	"testing"
)

func TestToJSON(t *testing.T) {
	v := map[string]any{"a": 1.5}

	compact, err := ToJSON(v, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(compact) != `{"a":1.5}` {
		t.Errorf("Unexpected compact output %s", compact)
	}

	pretty, err := ToJSON(v, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(pretty) != "{\n  \"a\": 1.5\n}" {
		t.Errorf("Unexpected pretty output %s", pretty)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"x"}, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "[\"x\"]\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}
