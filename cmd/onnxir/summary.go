// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/sets"
	"gopkg.in/yaml.v3"
)

// ModelSummary holds the information reported for one model.
type ModelSummary struct {
	Name            string            `yaml:"name"`
	FileSize        int64             `yaml:"file_size"`
	IRVersion       int64             `yaml:"ir_version"`
	Producer        string            `yaml:"producer,omitempty"`
	Graph           string            `yaml:"graph"`
	NumInputs       int               `yaml:"num_inputs"`
	NumOutputs      int               `yaml:"num_outputs"`
	NumNodes        int               `yaml:"num_nodes"`
	NumInitializers int               `yaml:"num_initializers"`
	Opsets          map[string]int64  `yaml:"opsets"`
	Functions       []FunctionSummary `yaml:"functions,omitempty"`

	// opsetDomains keeps the domains in the order they are imported.
	opsetDomains []string
}

// FunctionSummary holds the information reported for a model-local function.
type FunctionSummary struct {
	Domain     string   `yaml:"domain"`
	Name       string   `yaml:"name"`
	Inputs     []string `yaml:"inputs"`
	Outputs    []string `yaml:"outputs"`
	Attributes []string `yaml:"attributes,omitempty"`
	NumNodes   int      `yaml:"num_nodes"`
}

// Summarize collects the summary of model, read from a file of the given size.
func Summarize(name string, fileSize int64, model *protos.ModelProto) *ModelSummary {
	s := &ModelSummary{
		Name:      name,
		FileSize:  fileSize,
		IRVersion: model.IrVersion,
		Opsets:    make(map[string]int64, len(model.OpsetImport)),
	}
	if model.ProducerName != "" {
		s.Producer = model.ProducerName
		if model.ProducerVersion != "" {
			s.Producer += " " + model.ProducerVersion
		}
	}
	if g := model.Graph; g != nil {
		s.Graph = g.Name
		s.NumInputs, s.NumOutputs = len(g.Input), len(g.Output)
		s.NumNodes = len(g.Node)
		s.NumInitializers = len(g.Initializer)
	}
	for _, opset := range model.OpsetImport {
		if _, found := s.Opsets[opset.Domain]; !found {
			s.opsetDomains = append(s.opsetDomains, opset.Domain)
		}
		s.Opsets[opset.Domain] = opset.Version
	}
	for _, f := range model.Functions {
		attrs := append([]string(nil), f.Attribute...)
		for _, a := range f.AttributeProto {
			attrs = append(attrs, a.Name+"="+attributeValueString(a))
		}
		s.Functions = append(s.Functions, FunctionSummary{
			Domain:     f.Domain,
			Name:       f.Name,
			Inputs:     f.Input,
			Outputs:    f.Output,
			Attributes: attrs,
			NumNodes:   len(f.Node),
		})
	}
	return s
}

// SummariesYAML renders the summaries as a YAML list.
func SummariesYAML(summaries []*ModelSummary) ([]byte, error) {
	return yaml.Marshal(summaries)
}

// Summary prints a table with one column per model.
func Summary(summaries []*ModelSummary) {
	fmt.Println(titleStyle.Render("Summary"))
	table := newPlainTable(lipgloss.Right, lipgloss.Left)
	header := []string{"model"}
	for _, s := range summaries {
		header = append(header, s.Name)
	}
	table.Headers(header...)
	rows := []struct {
		name  string
		value func(s *ModelSummary) string
	}{
		{"file size", func(s *ModelSummary) string { return humanize.Bytes(uint64(s.FileSize)) }},
		{"ir_version", func(s *ModelSummary) string { return strconv.FormatInt(s.IRVersion, 10) }},
		{"producer", func(s *ModelSummary) string { return s.Producer }},
		{"graph", func(s *ModelSummary) string { return s.Graph }},
		{"# inputs", func(s *ModelSummary) string { return humanize.Comma(int64(s.NumInputs)) }},
		{"# outputs", func(s *ModelSummary) string { return humanize.Comma(int64(s.NumOutputs)) }},
		{"# nodes", func(s *ModelSummary) string { return humanize.Comma(int64(s.NumNodes)) }},
		{"# initializers", func(s *ModelSummary) string { return humanize.Comma(int64(s.NumInitializers)) }},
		{"# functions", func(s *ModelSummary) string { return humanize.Comma(int64(len(s.Functions))) }},
	}
	for _, r := range rows {
		row := []string{r.name}
		for _, s := range summaries {
			row = append(row, r.value(s))
		}
		table.Row(row...)
	}
	fmt.Println(table.Render())
}

// Opsets prints a table of the imported opset versions, one row per domain and one column per model.
func Opsets(summaries []*ModelSummary) {
	fmt.Println(titleStyle.Render("Opsets"))
	table := newPlainTable(lipgloss.Right, lipgloss.Center)
	header := []string{"domain"}
	var domains []string
	seen := sets.Make[string]()
	for _, s := range summaries {
		header = append(header, s.Name)
		for _, domain := range s.opsetDomains {
			if seen.InsertNew(domain) {
				domains = append(domains, domain)
			}
		}
	}
	table.Headers(header...)
	for _, domain := range domains {
		row := []string{displayDomain(domain)}
		for _, s := range summaries {
			if version, found := s.Opsets[domain]; found {
				row = append(row, strconv.FormatInt(version, 10))
			} else {
				row = append(row, "-")
			}
		}
		table.Row(row...)
	}
	fmt.Println(table.Render())
}

func displayDomain(domain string) string {
	if domain == "" {
		return "(default)"
	}
	return domain
}
