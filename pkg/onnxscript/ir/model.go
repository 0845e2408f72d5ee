// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/ordered"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// Model configures the conversion of a Function to a standalone ModelProto.
// Create it with Function.Model, set the options with the With* methods, and call Done.
type Model struct {
	fn *Function

	ioTypes                 TypeLike
	inputTypes, outputTypes []TypeLike

	// functions, if not nil, replaces the functions called by fn. Each entry is either a
	// *protos.FunctionProto or a Callable.
	functions []any

	irVersion                     int64
	producerName, producerVersion string
	docString, domain             string
	modelVersion                  int64
	metadata                      *ordered.Map[string, string]
}

// Model returns a configuration to convert the function to a model.
func (fn *Function) Model() *Model {
	return &Model{fn: fn, metadata: ordered.Make[string, string]()}
}

// ToModelProto converts the function to a model with the default options. It's a shortcut to Model().Done().
func (fn *Function) ToModelProto() (*protos.ModelProto, error) {
	return fn.Model().Done()
}

// WithIOTypes sets the type of every input and output that doesn't have one.
func (m *Model) WithIOTypes(t TypeLike) *Model {
	m.ioTypes = t
	return m
}

// WithInputTypes sets the type of the inputs, positionally, replacing any existing type.
//
// If the number of types differs from the number of inputs, the extra types or the extra inputs are ignored.
func (m *Model) WithInputTypes(types ...TypeLike) *Model {
	m.inputTypes = types
	return m
}

// WithOutputTypes sets the type of the outputs, positionally, replacing any existing type.
//
// If the number of types differs from the number of outputs, the extra types or the extra outputs are ignored.
func (m *Model) WithOutputTypes(types ...TypeLike) *Model {
	m.outputTypes = types
	return m
}

// WithFunctions appends callable units to the list of functions included in the model.
//
// Once WithFunctions or WithFunctionProtos is used, only the listed functions are included, in the order
// given, instead of the functions called by the statements.
func (m *Model) WithFunctions(units ...Callable) *Model {
	if m.functions == nil {
		m.functions = make([]any, 0, len(units))
	}
	for _, unit := range units {
		m.functions = append(m.functions, unit)
	}
	return m
}

// WithFunctionProtos appends already serialized functions to the list of functions included in the model.
// The model holds copies of them. Nil entries make Done fail. See WithFunctions.
func (m *Model) WithFunctionProtos(functions ...*protos.FunctionProto) *Model {
	if m.functions == nil {
		m.functions = make([]any, 0, len(functions))
	}
	for _, f := range functions {
		m.functions = append(m.functions, f)
	}
	return m
}

// WithIRVersion sets the IR version, instead of selecting it from the opset version of the default domain.
func (m *Model) WithIRVersion(version int64) *Model {
	m.irVersion = version
	return m
}

// WithProducer sets the name and version of the tool producing the model.
func (m *Model) WithProducer(name, version string) *Model {
	m.producerName, m.producerVersion = name, version
	return m
}

// WithDocString sets the documentation of the model.
func (m *Model) WithDocString(doc string) *Model {
	m.docString = doc
	return m
}

// WithModelVersion sets the version of the model.
func (m *Model) WithModelVersion(version int64) *Model {
	m.modelVersion = version
	return m
}

// WithDomain sets the domain (reverse-DNS name) of the model.
func (m *Model) WithDomain(domain string) *Model {
	m.domain = domain
	return m
}

// WithMetadata adds a metadata key/value pair. Setting an existing key replaces its value.
func (m *Model) WithMetadata(key, value string) *Model {
	m.metadata.Set(key, value)
	return m
}

func (m *Model) functionProtos(called *FunctionMap) ([]*protos.FunctionProto, error) {
	if m.functions == nil {
		return called.Values(), nil
	}
	functions := make([]*protos.FunctionProto, 0, len(m.functions))
	for ii, f := range m.functions {
		switch v := f.(type) {
		case *protos.FunctionProto:
			if v == nil {
				return nil, errors.Wrapf(ErrSerialization, "function #%d included in model %q is nil", ii, m.fn.name)
			}
			functions = append(functions, proto.CloneOf(v))
		case Callable:
			fp, err := v.ToFunctionProto()
			if err != nil {
				return nil, errors.WithMessagef(err, "converting function %q included in model %q", v.Name(), m.fn.name)
			}
			functions = append(functions, fp)
		default:
			return nil, errors.Wrapf(ErrSerialization, "function #%d included in model %q has invalid type %T",
				ii, m.fn.name, f)
		}
	}
	return functions, nil
}

// Done converts the function to a model.
//
// The graph inputs and outputs don't get the default type: only the ones set by the function or by the
// options. The model imports the opset of each domain used by the statements (first version seen), of each
// included function domain (version 1) and of the default domain (Target.MaxOpsetVersion if no statement
// uses it).
func (m *Model) Done() (*protos.ModelProto, error) {
	fn := m.fn
	graph, called, err := fn.ToGraphAndFunctions(false)
	if err != nil {
		return nil, err
	}
	if m.ioTypes != nil {
		for _, vi := range graph.Input {
			if vi.Type == nil {
				vi.Type = m.ioTypes.ToTypeProto()
			}
		}
		for _, vi := range graph.Output {
			if vi.Type == nil {
				vi.Type = m.ioTypes.ToTypeProto()
			}
		}
	}
	for ii := 0; ii < min(len(graph.Input), len(m.inputTypes)); ii++ {
		graph.Input[ii].Type = m.inputTypes[ii].ToTypeProto()
	}
	for ii := 0; ii < min(len(graph.Output), len(m.outputTypes)); ii++ {
		graph.Output[ii].Type = m.outputTypes[ii].ToTypeProto()
	}

	functions, err := m.functionProtos(called)
	if err != nil {
		return nil, err
	}

	opsets := ordered.Make[string, int64]()
	for _, s := range fn.stmts {
		opsets.SetIfAbsent(s.Callee.Domain(), s.Callee.Version())
	}
	opsets.SetIfAbsent("", fn.target.MaxOpsetVersion)
	for _, f := range functions {
		opsets.SetIfAbsent(f.Domain, 1)
	}
	opsetImports := make([]*protos.OperatorSetIdProto, 0, opsets.Len())
	for domain, version := range opsets.All() {
		opsetImports = append(opsetImports, helper.MakeOpsetID(domain, version))
	}

	model := helper.MakeModel(graph, opsetImports, functions)
	if m.irVersion > 0 {
		model.IrVersion = m.irVersion
	} else {
		defaultVersion, _ := opsets.Get("")
		model.IrVersion = helper.SelectIRVersion(defaultVersion, "")
	}
	model.ProducerName, model.ProducerVersion = m.producerName, m.producerVersion
	model.DocString = m.docString
	model.Domain = m.domain
	model.ModelVersion = m.modelVersion
	for key, value := range m.metadata.All() {
		model.MetadataProps = append(model.MetadataProps, &protos.StringStringEntryProto{Key: key, Value: value})
	}
	return model, nil
}
