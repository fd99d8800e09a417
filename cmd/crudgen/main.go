// Command crudgen writes the named CRUD handler bindings for one resource.
//
//	go run ./cmd/crudgen -suffix task \
//		-bmc rest-core/internal/model.TaskBmc \
//		-entity rest-core/internal/model.Task \
//		-for-create rest-core/internal/model.TaskForCreate \
//		-for-update rest-core/internal/model.TaskForUpdate \
//		-filter rest-core/internal/model.TaskFilter \
//		-out task_gen.go
package main

import (
	"bytes"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"rest-core/internal/codegen"
)

func main() {
	var d codegen.Descriptor
	var out string

	flag.StringVar(&d.Package, "pkg", os.Getenv("GOPACKAGE"), "package name of the generated file")
	flag.StringVar(&d.Bmc, "bmc", "", "model controller type")
	flag.StringVar(&d.Entity, "entity", "", "entity type")
	flag.StringVar(&d.ForCreate, "for-create", "", "create payload type")
	flag.StringVar(&d.ForUpdate, "for-update", "", "update payload type")
	flag.StringVar(&d.Filter, "filter", "", "list filter type")
	flag.StringVar(&d.Suffix, "suffix", "", "resource suffix in snake_case")
	flag.StringVar(&d.Plural, "plural", "", "plural suffix (default suffix + \"s\")")
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.Parse()

	var buf bytes.Buffer
	if err := codegen.Render(d, &buf); err != nil {
		logrus.WithError(err).Fatal("crudgen: generate")
	}

	if out == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Fatal("crudgen: write")
		}
		return
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		logrus.WithError(err).Fatal("crudgen: write")
	}
	logrus.WithField("file", out).Info("crudgen: generated")
}
