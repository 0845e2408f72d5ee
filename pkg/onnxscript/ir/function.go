// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/onnxscript/pkg/onnx/helper"
	"github.com/gomlx/onnxscript/pkg/onnx/protos"
	"github.com/gomlx/onnxscript/pkg/support/ordered"
	"github.com/gomlx/onnxscript/pkg/support/xslices"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"k8s.io/klog/v2"
)

// warnf reports non-fatal inconsistencies. Tests replace it to count warnings.
var warnf = klog.Warningf

// Callable is an already built function that can be called by statements of other functions, and so needs
// to be included in their models.
type Callable interface {
	// Name of the function, used as the key to deduplicate called functions.
	Name() string

	// CalledFunctions returns the functions the unit itself calls, transitively. It may be nil.
	CalledFunctions() *FunctionMap

	// ToFunctionProto serializes the unit.
	ToFunctionProto() (*protos.FunctionProto, error)
}

// Function is a function under construction: a list of statements with its inputs, outputs and
// attribute parameters.
//
// It is populated through a Builder. Once converted to a proto it should no longer be modified, but this is
// not enforced.
type Function struct {
	name, domain string
	target       Target

	inputs, outputs []*Var
	stmts           []*Stmt

	// attrs are the attribute parameters without default value.
	attrs []string

	// attrDefaults are the attribute parameters with a default value.
	attrDefaults []AttributeValue

	calledFunctions *FunctionMap
	nestedFunctions *ordered.Map[string, *Function]
	docstring       string

	// OuterScopeVariables holds the free variables captured from enclosing scopes. It is populated and
	// used by the front-end only.
	OuterScopeVariables map[string]any
}

// NewFunction returns an empty function for the DefaultTarget.
// Usually functions are created with Builder.NewFunction instead.
func NewFunction(name, domain string) *Function {
	return newFunction(name, domain, DefaultTarget())
}

func newFunction(name, domain string, target Target) *Function {
	return &Function{
		name:                name,
		domain:              domain,
		target:              target,
		calledFunctions:     ordered.Make[string, *protos.FunctionProto](),
		nestedFunctions:     ordered.Make[string, *Function](),
		OuterScopeVariables: make(map[string]any),
	}
}

// Name of the function.
func (fn *Function) Name() string { return fn.name }

// Domain of the function.
func (fn *Function) Domain() string { return fn.domain }

// Target the function is serialized for.
func (fn *Function) Target() Target { return fn.target }

// Inputs of the function, in declaration order.
func (fn *Function) Inputs() []*Var { return fn.inputs }

// Outputs of the function, in declaration order.
func (fn *Function) Outputs() []*Var { return fn.outputs }

// Stmts returns the statements of the function, in execution order.
func (fn *Function) Stmts() []*Stmt { return fn.stmts }

// AttrParameters returns the names of the attribute parameters without default values.
func (fn *Function) AttrParameters() []string { return fn.attrs }

// AttrDefaults returns the attribute parameters with default values.
func (fn *Function) AttrDefaults() []AttributeValue { return fn.attrDefaults }

// CalledFunctions returns the serialized functions added with AddCalledFunction.
func (fn *Function) CalledFunctions() *FunctionMap { return fn.calledFunctions }

// NestedFunctions returns the functions defined inside this one, indexed by name.
func (fn *Function) NestedFunctions() *ordered.Map[string, *Function] { return fn.nestedFunctions }

// Docstring of the function.
func (fn *Function) Docstring() string { return fn.docstring }

// AppendDocstring appends to the function docstring.
func (fn *Function) AppendDocstring(docstring string) {
	fn.docstring += docstring
}

// AppendStmt appends a statement: statements are executed in the order they are appended.
func (fn *Function) AppendStmt(stmt *Stmt) {
	fn.stmts = append(fn.stmts, stmt)
}

// AppendInput appends an input.
func (fn *Function) AppendInput(v *Var) {
	fn.inputs = append(fn.inputs, v)
}

// AppendOutput appends an output.
func (fn *Function) AppendOutput(v *Var) {
	fn.outputs = append(fn.outputs, v)
}

// AddAttrParameter declares an attribute parameter. If defaultValue is nil the parameter has no default.
func (fn *Function) AddAttrParameter(name string, defaultValue AttributeValue) {
	if defaultValue != nil {
		fn.attrDefaults = append(fn.attrDefaults, defaultValue)
		return
	}
	fn.attrs = append(fn.attrs, name)
}

// AssignedNames returns the names assigned by the statements, in execution order.
func (fn *Function) AssignedNames() []string {
	var names []string
	for _, stmt := range fn.stmts {
		names = append(names, stmt.OutputNames()...)
	}
	return names
}

// OpsetImport returns the opset version of each domain used by the statements.
//
// If statements use different versions of the same domain, the first one seen is used and a warning is
// logged.
func (fn *Function) OpsetImport() *ordered.Map[string, int64] {
	opsets := ordered.Make[string, int64]()
	for _, s := range fn.stmts {
		domain, version := s.Callee.Domain(), s.Callee.Version()
		if seen, found := opsets.Get(domain); !found {
			opsets.Set(domain, version)
		} else if seen != version {
			warnf("There is a version conflict in domain %q, with %q: using version %d, ignoring version %d",
				domain, fn.name, seen, version)
		}
	}
	return opsets
}

func (fn *Function) nodes() []*protos.NodeProto {
	nodes := make([]*protos.NodeProto, len(fn.stmts))
	for ii, s := range fn.stmts {
		nodes[ii] = s.ToNodeProto(fmt.Sprintf("n%d", ii))
	}
	return nodes
}

func valueInfos(vars []*Var, useDefaultType bool) ([]*protos.ValueInfoProto, error) {
	return xslices.MapErr(vars, func(v *Var) (*protos.ValueInfoProto, error) {
		return v.ToValueInfo(useDefaultType)
	})
}

// setFunctionCopies sets in dst a copy of each function of src. src may be nil.
func setFunctionCopies(dst, src *FunctionMap) {
	if src == nil {
		return
	}
	for name, f := range src.All() {
		dst.Set(name, proto.CloneOf(f))
	}
}

// ToGraphAndFunctions converts the function to a graph, and returns it along with the functions called by
// its statements and the ones added with AddCalledFunction.
//
// The returned protos are copies: changing them doesn't affect fn, nor the output of later calls.
//
// If useDefaultType is true, inputs and outputs without a type get the default (empty) type.
func (fn *Function) ToGraphAndFunctions(useDefaultType bool) (*protos.GraphProto, *FunctionMap, error) {
	called := ordered.Make[string, *protos.FunctionProto]()
	for _, s := range fn.stmts {
		setFunctionCopies(called, s.Functions)
	}
	setFunctionCopies(called, fn.calledFunctions)
	inputs, err := valueInfos(fn.inputs, useDefaultType)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "inputs of function %q", fn.name)
	}
	outputs, err := valueInfos(fn.outputs, useDefaultType)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "outputs of function %q", fn.name)
	}
	graph := helper.MakeGraph(fn.nodes(), fn.name, inputs, outputs)
	return graph, called, nil
}

// ToGraphProto converts the function to a graph. See ToGraphAndFunctions.
func (fn *Function) ToGraphProto(useDefaultType bool) (*protos.GraphProto, error) {
	graph, _, err := fn.ToGraphAndFunctions(useDefaultType)
	return graph, err
}

// ToFunctionProto converts the function to a reusable function unit.
//
// Domains used by the nodes but missing from OpsetImport are imported with version 1. Attribute parameters
// with default values keep their defaults only if the target supports it (Target.FunctionAttributeDefaults):
// otherwise they are listed as plain attribute names.
func (fn *Function) ToFunctionProto() (*protos.FunctionProto, error) {
	opsets := fn.OpsetImport()
	nodes := fn.nodes()
	for _, n := range nodes {
		opsets.SetIfAbsent(n.Domain, 1)
	}
	opsetImports := make([]*protos.OperatorSetIdProto, 0, opsets.Len())
	for domain, version := range opsets.All() {
		opsetImports = append(opsetImports, helper.MakeOpsetID(domain, version))
	}

	attrs := fn.attrs
	if !fn.target.FunctionAttributeDefaults {
		attrs = append(attrs[:len(attrs):len(attrs)], xslices.Map(fn.attrDefaults, AttributeValue.Name)...)
	}
	f := helper.MakeFunction(fn.domain, fn.name,
		xslices.Map(fn.inputs, func(v *Var) string { return v.Name }),
		xslices.Map(fn.outputs, func(v *Var) string { return v.Name }),
		nodes, opsetImports, xslices.Copy(attrs), fn.docstring)
	if fn.target.FunctionAttributeDefaults {
		f.AttributeProto = xslices.Map(fn.attrDefaults, AttributeValue.ToAttributeProto)
	}
	return f, nil
}

// AddCalledFunction includes the callable unit, and the functions it calls, among the functions called by
// fn. Functions already known by name are not replaced.
//
// Failures to serialize the unit, returned or raised, are reported as ErrSerialization.
func (fn *Function) AddCalledFunction(unit Callable) error {
	if sub := unit.CalledFunctions(); sub != nil {
		for name, f := range sub.All() {
			fn.calledFunctions.SetIfAbsent(name, f)
		}
	}
	if fn.calledFunctions.Has(unit.Name()) {
		return nil
	}
	var f *protos.FunctionProto
	err := exceptions.TryCatch[error](func() {
		var err error
		f, err = unit.ToFunctionProto()
		if err != nil {
			panic(err)
		}
	})
	if err != nil {
		return errors.Wrapf(ErrSerialization, "issue with type %T: %v", unit, err)
	}
	fn.calledFunctions.Set(unit.Name(), f)
	return nil
}

// AddNestedFunction registers a function defined inside fn. A previous nested function with the same name
// is replaced.
func (fn *Function) AddNestedFunction(nested *Function) {
	fn.nestedFunctions.Set(nested.name, nested)
}

// String returns the function signature followed by its statements.
func (fn *Function) String() string {
	var sb strings.Builder
	sb.WriteString(fn.name)
	sb.WriteString(" ")
	if len(fn.attrs) > 0 {
		sb.WriteString("<" + strings.Join(fn.attrs, ", ") + ">")
	}
	if len(fn.attrDefaults) > 0 {
		sb.WriteString("<" + strings.Join(xslices.Map(fn.attrDefaults, AttributeValue.String), ", ") + ">")
	}
	typed := func(v *Var) string { return v.TypedString() }
	fmt.Fprintf(&sb, "(%s) => (%s)", strings.Join(xslices.Map(fn.inputs, typed), ", "),
		strings.Join(xslices.Map(fn.outputs, typed), ", "))
	sb.WriteString("\n{\n   ")
	sb.WriteString(strings.Join(xslices.Map(fn.stmts, (*Stmt).String), "\n   "))
	sb.WriteString("\n}\n")
	return sb.String()
}

// DebugPrint logs the sub-graphs held by the attributes of the statements, if verbose logging (level 2) is
// enabled.
func (fn *Function) DebugPrint() {
	if !klog.V(2).Enabled() {
		return
	}
	var sb strings.Builder
	for _, s := range fn.stmts {
		for _, attr := range s.Attrs {
			if a := attr.ToAttributeProto(); a.G != nil {
				sb.WriteString(helper.PrintableGraph(a.G, ""))
				sb.WriteString("\n")
			}
		}
	}
	if sb.Len() > 0 {
		klog.Infof("Function %q sub-graphs:\n%s", fn.name, sb.String())
	}
}
