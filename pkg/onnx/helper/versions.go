// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package helper

// DefaultDomain is the canonical name of the default ("") ONNX operator domain.
const DefaultDomain = "ai.onnx"

// Release maps an ONNX release to the IR version and the opset versions it introduced.
// A zero opset version means the domain was not available in that release.
type Release struct {
	Name         string
	IRVersion    int64
	ONNX         int64
	ONNXML       int64
	ONNXTraining int64
}

// VersionTable lists the ONNX releases in chronological order.
var VersionTable = []Release{
	{"1.0", 3, 1, 1, 0},
	{"1.1", 3, 5, 1, 0},
	{"1.1.2", 3, 6, 1, 0},
	{"1.2", 3, 7, 1, 0},
	{"1.3", 3, 8, 1, 0},
	{"1.4.1", 4, 9, 1, 0},
	{"1.5.0", 5, 10, 1, 0},
	{"1.6.0", 6, 11, 2, 0},
	{"1.7.0", 7, 12, 2, 1},
	{"1.8.0", 7, 13, 2, 1},
	{"1.8.1", 7, 13, 2, 1},
	{"1.9.0", 7, 14, 2, 1},
	{"1.10.0", 8, 15, 2, 1},
	{"1.10.1", 8, 15, 2, 1},
	{"1.10.2", 8, 15, 2, 1},
	{"1.11.0", 8, 16, 3, 1},
	{"1.12.0", 8, 17, 3, 1},
	{"1.13.0", 8, 18, 3, 1},
	{"1.13.1", 8, 18, 3, 1},
	{"1.14.0", 9, 19, 3, 1},
	{"1.14.1", 9, 19, 3, 1},
	{"1.15.0", 9, 20, 4, 1},
	{"1.16.0", 10, 21, 5, 1},
	{"1.17.0", 10, 22, 5, 1},
	{"1.18.0", 11, 23, 5, 1},
}

type opsetKey struct {
	domain  string
	version int64
}

// opsetToIRVersion maps (domain, opset version) to the IR version of the first release that included it.
var opsetToIRVersion = buildOpsetToIRVersion()

func buildOpsetToIRVersion() map[opsetKey]int64 {
	result := make(map[opsetKey]int64)
	add := func(key opsetKey, irVersion int64) {
		if _, found := result[key]; !found {
			result[key] = irVersion
		}
	}
	for _, r := range VersionTable {
		add(opsetKey{DefaultDomain, r.ONNX}, r.IRVersion)
		add(opsetKey{"ai.onnx.ml", r.ONNXML}, r.IRVersion)
		if r.ONNXTraining > 0 {
			add(opsetKey{"ai.onnx.training", r.ONNXTraining}, r.IRVersion)
			add(opsetKey{"ai.onnx.preview.training", r.ONNXTraining}, r.IRVersion)
		}
	}
	return result
}

// Latest versions known by this package.
var (
	// MaxOpsetVersion is the highest opset version of the default domain.
	MaxOpsetVersion = VersionTable[len(VersionTable)-1].ONNX

	// IRVersion is the highest IR version.
	IRVersion = VersionTable[len(VersionTable)-1].IRVersion
)

// IRVersionFor returns the IR version of the first release including the (domain, version) opset.
// The empty domain is the default one.
func IRVersionFor(domain string, version int64) (irVersion int64, found bool) {
	if domain == "" {
		domain = DefaultDomain
	}
	irVersion, found = opsetToIRVersion[opsetKey{domain, version}]
	return
}

// SelectIRVersion selects a suitable IR version for the given opset version of domain.
//
// If the pair is not known (e.g.: a newer opset), it returns the highest known IR version of the default domain.
func SelectIRVersion(version int64, domain string) int64 {
	if irVersion, found := IRVersionFor(domain, version); found {
		return irVersion
	}
	var best int64
	for key, irVersion := range opsetToIRVersion {
		if key.domain == DefaultDomain && irVersion > best {
			best = irVersion
		}
	}
	return best
}
