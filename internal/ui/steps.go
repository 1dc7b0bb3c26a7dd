package ui

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/five82/onboard/internal/validate"
)

// Wizard step identifiers.
const (
	StepWelcome = iota + 1
	StepProject
	StepLocation
	StepReview
)

// Field identifiers.
const (
	FieldName = "name"
	FieldDir  = "dir"
)

var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// page is the static content shown for a step.
type page struct {
	intro  []string
	fields []string
}

var pages = map[int]page{
	StepWelcome: {intro: []string{
		"This wizard sets up a new workspace.",
		"Press enter to continue, shift+tab to go back.",
	}},
	StepProject: {
		intro:  []string{"Choose a short project name: lowercase letters, digits and dashes."},
		fields: []string{FieldName},
	},
	StepLocation: {
		intro:  []string{"Where should the workspace live?"},
		fields: []string{FieldDir},
	},
	StepReview: {intro: []string{"Press enter to finish."}},
}

// NewWizardCanvas builds the canvas holding every wizard field.
func NewWizardCanvas() *Canvas {
	return NewCanvas(
		NewField(FieldName, "Project name", "my-project"),
		NewField(FieldDir, "Install directory", "/home/you/projects/my-project"),
	)
}

// Steps returns the wizard steps whose checks read c's fields.
func Steps(c *Canvas) []validate.Step {
	return []validate.Step{
		{ID: StepWelcome, Title: "Welcome"},
		{ID: StepProject, Title: "Project", Check: func() validate.Result {
			return checkProjectName(fieldValue(c, FieldName))
		}},
		{ID: StepLocation, Title: "Location", Check: func() validate.Result {
			return checkInstallDir(fieldValue(c, FieldDir))
		}},
		{ID: StepReview, Title: "Review"},
	}
}

func fieldValue(c *Canvas, id string) string {
	if f := c.Field(id); f != nil {
		return f.Value()
	}
	return ""
}

func checkProjectName(name string) validate.Result {
	selector := "#" + FieldName
	switch {
	case name == "":
		return validate.Fail(selector, "Project name is required")
	case len(name) > 64:
		return validate.Fail(selector, "Project name must be at most 64 characters")
	case !projectNamePattern.MatchString(name):
		return validate.Fail(selector, fmt.Sprintf("%q may only contain lowercase letters, digits and dashes", name))
	}
	return validate.Pass()
}

func checkInstallDir(dir string) validate.Result {
	selector := "#" + FieldDir
	if dir == "" {
		return validate.Fail(selector, "Install directory is required")
	}
	var errs []string
	if !filepath.IsAbs(dir) {
		errs = append(errs, "Install directory must be an absolute path")
	}
	if filepath.Clean(dir) == string(filepath.Separator) {
		errs = append(errs, "Install directory cannot be the filesystem root")
	}
	if len(errs) > 0 {
		return validate.Fail(selector, errs...)
	}
	return validate.Pass()
}
