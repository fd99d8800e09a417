package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskDescriptor() Descriptor {
	return Descriptor{
		Package:   "handlers",
		Bmc:       "rest-core/internal/model.TaskBmc",
		Entity:    "rest-core/internal/model.Task",
		ForCreate: "rest-core/internal/model.TaskForCreate",
		ForUpdate: "rest-core/internal/model.TaskForUpdate",
		Filter:    "rest-core/internal/model.TaskFilter",
		Suffix:    "task",
	}
}

func render(t *testing.T, d Descriptor) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(d, &buf))
	return buf.String()
}

func TestRender_Task(t *testing.T) {
	src := render(t, taskDescriptor())

	assert.Contains(t, src, "// Code generated by crudgen. DO NOT EDIT.")
	assert.Contains(t, src, "package handlers")
	assert.Contains(t, src, "var _ rest.Controller[model.Task, model.TaskForCreate, model.TaskForUpdate, model.TaskFilter] = model.TaskBmc{}")
	assert.Contains(t, src, "type TaskHandlers struct")
	assert.Contains(t, src, "func NewTaskHandlers(bmc rest.Controller[")

	for _, name := range []string{"CreateTask", "GetTask", "ListTasks", "UpdateTask", "DeleteTask"} {
		assert.Contains(t, src, "func (h *TaskHandlers) "+name+"(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req rest.Request) (*rest.Response, error)")
	}
	assert.Contains(t, src, `Path:   "/tasks"`)
	assert.Contains(t, src, `Plural: "tasks"`)
	assert.Contains(t, src, `Suffix: "task"`)
	assert.Contains(t, src, "func (h *TaskHandlers) Register(r fiber.Router, mm *model.ModelManager)")
}

func TestRender_PluralOverride(t *testing.T) {
	d := taskDescriptor()
	d.Bmc = "rest-core/internal/model.CategoryBmc"
	d.Suffix = "category"
	d.Plural = "categories"

	src := render(t, d)

	assert.Contains(t, src, "func (h *CategoryHandlers) ListCategories(")
	assert.Contains(t, src, `Path:   "/categories"`)
	assert.NotContains(t, src, "categorys")
}

func TestRender_SnakeSuffix(t *testing.T) {
	d := taskDescriptor()
	d.Suffix = "task_note"

	src := render(t, d)

	assert.Contains(t, src, "func (h *TaskNoteHandlers) ListTaskNotes(")
	assert.Contains(t, src, `Path:   "/task_notes"`)
}

func TestRender_LocalTypes(t *testing.T) {
	d := Descriptor{
		Package:   "widgets",
		Bmc:       "WidgetBmc",
		Entity:    "Widget",
		ForCreate: "WidgetForCreate",
		ForUpdate: "WidgetForUpdate",
		Filter:    "WidgetFilter",
		Suffix:    "widget",
	}

	src := render(t, d)

	assert.Contains(t, src, "var _ rest.Controller[Widget, WidgetForCreate, WidgetForUpdate, WidgetFilter] = WidgetBmc{}")
}

func TestGenerate_InvalidDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"missing package", func(d *Descriptor) { d.Package = "" }},
		{"empty suffix", func(d *Descriptor) { d.Suffix = "" }},
		{"camel suffix", func(d *Descriptor) { d.Suffix = "Task" }},
		{"bad plural", func(d *Descriptor) { d.Plural = "Tasks!" }},
		{"missing bmc", func(d *Descriptor) { d.Bmc = "" }},
		{"missing filter", func(d *Descriptor) { d.Filter = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := taskDescriptor()
			tt.mutate(&d)
			_, err := Generate(d)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_ErrorOrder(t *testing.T) {
	d := taskDescriptor()
	d.Bmc = ""
	d.Entity = ""
	d.Filter = ""

	_, err := Generate(d)

	require.Error(t, err)
	assert.Equal(t, "bmc type is required\nentity type is required\nfilter type is required", err.Error())
}

func categoryDescriptor() Descriptor {
	return Descriptor{
		Package:   "handlers",
		Bmc:       "rest-core/internal/model.CategoryBmc",
		Entity:    "rest-core/internal/model.Category",
		ForCreate: "rest-core/internal/model.CategoryForCreate",
		ForUpdate: "rest-core/internal/model.CategoryForUpdate",
		Filter:    "rest-core/internal/model.CategoryFilter",
		Suffix:    "category",
		Plural:    "categories",
	}
}

// The checked-in bindings must be what the generator produces today.
func TestRender_MatchesCommittedBindings(t *testing.T) {
	tests := []struct {
		file string
		desc Descriptor
	}{
		{"task_gen.go", taskDescriptor()},
		{"category_gen.go", categoryDescriptor()},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			committed, err := os.ReadFile(filepath.Join("..", "handlers", tt.file))
			require.NoError(t, err)

			wantImports, wantBody := splitSource(t, committed)
			gotImports, gotBody := splitSource(t, []byte(render(t, tt.desc)))

			assert.ElementsMatch(t, wantImports, gotImports)
			assert.Equal(t, wantBody, gotBody, "run go generate ./internal/handlers")
		})
	}
}

// splitSource returns the import paths and the declarations after the
// import block with layout differences removed.
func splitSource(t *testing.T, src []byte) ([]string, string) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	require.NoError(t, err)

	var paths []string
	for _, imp := range f.Imports {
		paths = append(paths, imp.Path.Value)
	}

	start := f.Name.End()
	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			start = gd.End()
		}
	}
	body := string(src[fset.Position(start).Offset:])

	header := string(src[:fset.Position(f.Package).Offset])
	assert.Contains(t, header, "// Code generated by crudgen. DO NOT EDIT.")

	body = strings.Join(strings.Fields(body), "")
	body = strings.NewReplacer(",}", "}", ",)", ")").Replace(body)
	return paths, body
}
