package ui

import (
	"strings"
	"testing"

	"github.com/five82/onboard/internal/theme"
	"github.com/five82/onboard/internal/validate"
)

var (
	_ theme.Root         = (*Canvas)(nil)
	_ validate.Document  = (*Canvas)(nil)
	_ validate.Focusable = (*Field)(nil)
)

func TestQuerySelector_FirstMatchInDocumentOrder(t *testing.T) {
	c := NewWizardCanvas()

	el := c.QuerySelector("#dir, #name")
	f, ok := el.(*Field)
	if !ok || f.ID != FieldName {
		t.Fatalf("QuerySelector(#dir, #name) = %#v, want the name field", el)
	}
}

func TestQuerySelector_NoMatchIsNil(t *testing.T) {
	c := NewWizardCanvas()

	for _, sel := range []string{"#missing", "", "#", "name", ".dir"} {
		if el := c.QuerySelector(sel); el != nil {
			t.Fatalf("QuerySelector(%q) = %#v, want nil", sel, el)
		}
	}
}

func TestField_ScrollIntoViewCenters(t *testing.T) {
	c := NewWizardCanvas()
	c.resize(80, 10)
	c.setContent(make([]string, 100))

	f := c.Field(FieldDir)
	f.line = 50
	f.ScrollIntoView(validate.ScrollOptions{Behavior: validate.ScrollSmooth, Block: validate.BlockCenter})
	if got := c.viewport.YOffset; got != 45 {
		t.Fatalf("YOffset = %d, want 45", got)
	}

	f.line = 2
	f.ScrollIntoView(validate.ScrollOptions{Block: validate.BlockCenter})
	if got := c.viewport.YOffset; got != 0 {
		t.Fatalf("YOffset = %d, want 0 near the top", got)
	}
}

func TestField_FocusMovesInputFocus(t *testing.T) {
	c := NewWizardCanvas()
	name, dir := c.Field(FieldName), c.Field(FieldDir)

	name.Focus()
	if !name.Focused() || c.Focused() != name {
		t.Fatalf("name not focused after Focus()")
	}
	dir.Focus()
	if name.Focused() || !dir.Focused() {
		t.Fatalf("focus = (name %v, dir %v), want dir only", name.Focused(), dir.Focused())
	}
	if c.takeCmds() == nil {
		t.Fatalf("takeCmds() = nil, want blink commands from focus")
	}
	if c.takeCmds() != nil {
		t.Fatalf("takeCmds() should drain pending commands")
	}
}

func TestCanvas_FocusNextWraps(t *testing.T) {
	c := NewWizardCanvas()
	ids := []string{FieldName, FieldDir}

	c.FocusNext(ids)
	if c.Focused().ID != FieldName {
		t.Fatalf("Focused = %q, want name", c.Focused().ID)
	}
	c.FocusNext(ids)
	c.FocusNext(ids)
	if c.Focused().ID != FieldName {
		t.Fatalf("Focused = %q after wrap, want name", c.Focused().ID)
	}
}

func TestCanvas_ThemeStoreKeepsExactlyOneClass(t *testing.T) {
	c := NewWizardCanvas()
	s := theme.NewStore(theme.Env{Root: c})

	for _, m := range []theme.Mode{theme.Light, theme.System, theme.Dark, theme.Light} {
		s.SetMode(m)
		classes := c.Classes()
		if len(classes) != 1 || classes[0] != s.Resolve(m).Class() {
			t.Fatalf("classes after SetMode(%q) = %v, want [%s]", m, classes, s.Resolve(m).Class())
		}
		if c.Resolved() != s.Resolve(m) {
			t.Fatalf("Resolved() = %q, want %q", c.Resolved(), s.Resolve(m))
		}
		if c.Palette().Name != string(s.Resolve(m)) {
			t.Fatalf("Palette().Name = %q, want %q", c.Palette().Name, s.Resolve(m))
		}
	}
}

func TestCoordinatorFocusesFailingField(t *testing.T) {
	c := NewWizardCanvas()
	checks := validate.New(Steps(c), validate.WithDocument(c))
	defer checks.Close()

	res := checks.Validate(StepLocation)
	if res.Valid {
		t.Fatalf("Validate(location) valid with empty dir")
	}
	if f := c.Focused(); f == nil || f.ID != FieldDir {
		t.Fatalf("Focused = %v, want dir", f)
	}
}

func TestChecks(t *testing.T) {
	tests := []struct {
		name    string
		res     validate.Result
		wantErr string
	}{
		{"empty name", checkProjectName(""), "required"},
		{"upper name", checkProjectName("Demo"), "lowercase"},
		{"long name", checkProjectName(strings.Repeat("a", 65)), "64"},
		{"good name", checkProjectName("demo-1"), ""},
		{"empty dir", checkInstallDir(""), "required"},
		{"relative dir", checkInstallDir("projects/demo"), "absolute"},
		{"root dir", checkInstallDir("/"), "root"},
		{"good dir", checkInstallDir("/tmp/demo"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				if !tt.res.Valid {
					t.Fatalf("result = %#v, want valid", tt.res)
				}
				return
			}
			if tt.res.Valid || len(tt.res.Errors) == 0 || !strings.Contains(tt.res.Errors[0], tt.wantErr) {
				t.Fatalf("result = %#v, want an error containing %q", tt.res, tt.wantErr)
			}
			if tt.res.FocusSelector == "" {
				t.Fatalf("FocusSelector empty, want a field selector")
			}
		})
	}
}
