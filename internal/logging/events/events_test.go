package events

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/headless-menu/internal/logging"
)

func TestTracersEmitNamedEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	logging.SetTraceEnabled(true)
	t.Cleanup(func() {
		logging.SetTraceEnabled(false)
		logging.Configure("")
	})

	Menu.Open("file", MenuReasonTrigger)
	Menu.Close("file", MenuReasonOutside)
	Menu.StructuralError("file", errors.New("menu must have an item list child"))
	List.Cursor("file-items", 2)
	List.Typeahead("file-items", "sa", 2)
	List.Select("file-items", "file-item-2", "Save")
	Click.Publish("body", 1)
	App.Stop(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"event":"menu.open"`,
		`"reason":"outside"`,
		`"event":"menu.structure"`,
		`"event":"menu.cursor"`,
		`"query":"sa"`,
		`"label":"Save"`,
		`"event":"click.publish"`,
		`"event":"app.stop"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in trace output:\n%s", want, out)
		}
	}
}
