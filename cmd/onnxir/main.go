// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// onnxir inspects ONNX model files, or writes one of the example models built with the IR builder.
//
// Usage:
//
//	onnxir -summary -opsets model1.onnx model2.onnx
//	onnxir -nodes -functions model.onnx
//	onnxir -write_example=/tmp/if_my_elu_d.onnx -example=IfMyEluD
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/fsutil"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"k8s.io/klog/v2"
)

var (
	flagSummary   = flag.Bool("summary", false, "Display a summary of each model: versions, producer and sizes.")
	flagOpsets    = flag.Bool("opsets", false, "Lists the opsets imported by each model.")
	flagNodes     = flag.Bool("nodes", false, "Lists the nodes of the main graph of each model.")
	flagFunctions = flag.Bool("functions", false, "Lists the model-local functions of each model.")
	flagGraph     = flag.Bool("graph", false, "Prints the main graph of each model in text form.")
	flagYAML      = flag.Bool("yaml", false, "Outputs the summary, opsets and functions of the models as YAML "+
		"instead of tables.")
	flagColor = flag.Bool("color", true, "Use colors in the tables. If false, plain text is used.")

	flagWriteExample = flag.String("write_example", "", "If set, writes the example model selected with -example "+
		"to the given path, and then reports on it.")
	flagExample   = flag.String("example", "IfMyEluD", "Name of the example function to write with -write_example.")
	flagOverwrite = flag.Bool("overwrite", false, "Allow -write_example to replace an existing file.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if !*flagColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	args := flag.Args()
	if *flagWriteExample != "" {
		must.M(writeExample(*flagWriteExample, *flagExample, *flagOverwrite))
		args = append(args, *flagWriteExample)
	}
	if len(args) == 0 {
		klog.Errorf("Missing ONNX model file(s) to read from. See 'onnxir -help'")
		os.Exit(1)
	}
	if !*flagSummary && !*flagOpsets && !*flagNodes && !*flagFunctions && !*flagGraph && !*flagYAML {
		*flagSummary = true
	}

	models := make([]*protos.ModelProto, len(args))
	sizes := make([]int64, len(args))
	for ii, path := range args {
		path = must.M1(fsutil.ExpandHome(path))
		info, err := os.Stat(path)
		if err != nil {
			klog.Fatalf("Failed to stat %q: %+v", path, err)
		}
		sizes[ii] = info.Size()
		models[ii] = must.M1(protos.ReadModelFile(path))
	}
	names := MinimalUniquePaths(args...)
	summaries := make([]*ModelSummary, len(models))
	for ii, model := range models {
		summaries[ii] = Summarize(names[ii], sizes[ii], model)
	}

	if *flagYAML {
		fmt.Print(string(must.M1(SummariesYAML(summaries))))
		return
	}
	if *flagSummary {
		Summary(summaries)
	}
	if *flagOpsets {
		Opsets(summaries)
	}
	for ii, model := range models {
		if *flagNodes {
			Nodes(names[ii], model.Graph)
		}
		if *flagFunctions {
			Functions(names[ii], model.Functions)
		}
		if *flagGraph {
			Graph(names[ii], model.Graph)
		}
	}
}
