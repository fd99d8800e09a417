// Package codegen emits the named CRUD handler bindings for one resource.
//
// The generated file wraps rest.Handlers in a per-resource type whose
// methods carry the resource's names (CreateTask, ListTasks, ...) and
// registers them on a fiber router. It also asserts at compile time that
// the model controller satisfies rest.Controller for the given types.
package codegen

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

const (
	restPkg  = "rest-core/internal/rest"
	corePkg  = "rest-core/internal/core"
	modelPkg = "rest-core/internal/model"
	fiberPkg = "github.com/gofiber/fiber/v2"
)

var suffixPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Descriptor is the build-time resource description. Type names are
// either local identifiers or import-path qualified, e.g.
// "rest-core/internal/model.Task".
type Descriptor struct {
	Package   string
	Bmc       string
	Entity    string
	ForCreate string
	ForUpdate string
	Filter    string
	Suffix    string
	// Plural overrides the default Suffix + "s".
	Plural string
}

func (d Descriptor) plural() string {
	if d.Plural != "" {
		return d.Plural
	}
	return d.Suffix + "s"
}

func (d Descriptor) validate() error {
	var errs []error
	if d.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}
	if !suffixPattern.MatchString(d.Suffix) {
		errs = append(errs, fmt.Errorf("suffix %q must be a lower snake_case identifier", d.Suffix))
	}
	if d.Plural != "" && !suffixPattern.MatchString(d.Plural) {
		errs = append(errs, fmt.Errorf("plural %q must be a lower snake_case identifier", d.Plural))
	}
	for _, t := range []struct{ name, value string }{
		{"bmc", d.Bmc},
		{"entity", d.Entity},
		{"for-create", d.ForCreate},
		{"for-update", d.ForUpdate},
		{"filter", d.Filter},
	} {
		if t.value == "" {
			errs = append(errs, fmt.Errorf("%s type is required", t.name))
		}
	}
	return errors.Join(errs...)
}

// Generate builds the bindings file for d.
func Generate(d Descriptor) (*File, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	f := NewFile(d.Package)
	f.HeaderComment("Code generated by crudgen. DO NOT EDIT.")
	f.ImportName(fiberPkg, "fiber")
	f.ImportName(restPkg, "rest")
	f.ImportName(corePkg, "core")
	f.ImportName(modelPkg, "model")

	name := strcase.ToCamel(d.Suffix)
	plural := strcase.ToCamel(d.plural())
	typeName := name + "Handlers"

	typeArgs := func() []Code {
		return []Code{typeRef(d.Entity), typeRef(d.ForCreate), typeRef(d.ForUpdate), typeRef(d.Filter)}
	}
	controller := func() *Statement {
		return Qual(restPkg, "Controller").Types(typeArgs()...)
	}

	f.Var().Id("_").Add(controller()).Op("=").Add(typeRef(d.Bmc)).Values()

	f.Commentf("%s serves the %s resource.", typeName, d.Suffix)
	f.Type().Id(typeName).Struct(
		Id("set").Op("*").Qual(restPkg, "Handlers").Types(typeArgs()...),
	)

	f.Func().Id("New"+typeName).Params(Id("bmc").Add(controller())).Op("*").Id(typeName).Block(
		Return(Op("&").Id(typeName).Values(Dict{
			Id("set"): Qual(restPkg, "NewHandlers").Call(
				Id("bmc"),
				Qual(restPkg, "Descriptor").Values(Dict{
					Id("Suffix"): Lit(d.Suffix),
					Id("Plural"): Lit(d.plural()),
				}),
			),
		})),
	)

	ops := []struct {
		method string
		call   string
	}{
		{"Create" + name, "Create"},
		{"Get" + name, "Get"},
		{"List" + plural, "List"},
		{"Update" + name, "Update"},
		{"Delete" + name, "Delete"},
	}
	for _, op := range ops {
		f.Func().Params(Id("h").Op("*").Id(typeName)).Id(op.method).Params(
			Id("ctx").Qual("context", "Context"),
			Id("rc").Op("*").Qual(corePkg, "Ctx"),
			Id("mm").Op("*").Qual(modelPkg, "ModelManager"),
			Id("req").Qual(restPkg, "Request"),
		).Params(
			Op("*").Qual(restPkg, "Response"),
			Error(),
		).Block(
			Return(Id("h").Dot("set").Dot(op.call).Call(Id("ctx"), Id("rc"), Id("mm"), Id("req"))),
		)
	}

	routes := Dict{Id("Path"): Lit("/" + d.plural())}
	for _, op := range ops {
		routes[Id(op.call)] = Id("h").Dot(op.method)
	}
	f.Commentf("Register mounts the %s routes on r.", d.plural())
	f.Func().Params(Id("h").Op("*").Id(typeName)).Id("Register").Params(
		Id("r").Qual(fiberPkg, "Router"),
		Id("mm").Op("*").Qual(modelPkg, "ModelManager"),
	).Block(
		Qual(restPkg, "Mount").Call(Id("r"), Id("mm"), Qual(restPkg, "Routes").Values(routes)),
	)

	return f, nil
}

// Render generates and writes gofmt-ed source for d.
func Render(d Descriptor, w io.Writer) error {
	f, err := Generate(d)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// typeRef turns "import/path.Name" into a qualified reference.
func typeRef(s string) *Statement {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return Id(s)
	}
	return Qual(s[:i], s[i+1:])
}
