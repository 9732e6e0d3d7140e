package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v9.9.9"

	if s := String(); !strings.HasPrefix(s, "version: v9.9.9\n") {
		t.Errorf("String() = %q", s)
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version: v9.9.9") {
		t.Errorf("Template() = %q", tpl)
	}
}
