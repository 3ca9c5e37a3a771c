package buildinfo

import (
	"strings"
	"testing"
)

func TestStrings(t *testing.T) {
	if Short() == "" {
		t.Error("Short() is empty")
	}
	s := String()
	for _, want := range []string{"version: ", "commit: ", "built: "} {
		if !strings.Contains(s, want) {
			t.Errorf("String() lacks %q: %s", want, s)
		}
	}
	tpl := Template()
	if !strings.HasPrefix(tpl, "{{.Name}} version "+Version) {
		t.Errorf("unexpected template %q", tpl)
	}
}
