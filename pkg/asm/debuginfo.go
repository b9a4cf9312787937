package asm

import (
	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEncMode = em
}

// DebugInfo is the optional sidecar emitted alongside a binary program.
// It maps labels back to their locations and each instruction to the
// source line it came from. Instructions produced by one intrinsic
// expansion all map to the line of the @call.
type DebugInfo struct {
	Labels     map[string]uint32 `cbor:"1,keyasint,omitempty"` // code label -> instruction index
	DataLabels map[string]uint32 `cbor:"2,keyasint,omitempty"` // data label -> section offset
	Lines      []uint32          `cbor:"3,keyasint,omitempty"` // instruction index -> 1-based source line
}

// DebugInfo returns the sidecar for the most recently assembled program.
func (a *Assembler) DebugInfo() *DebugInfo {
	info := &DebugInfo{
		Labels:     make(map[string]uint32),
		DataLabels: make(map[string]uint32),
		Lines:      make([]uint32, len(a.lineMap)),
	}
	for name, l := range a.labels {
		switch l.kind {
		case labelCode:
			info.Labels[name] = uint32(l.value)
		case labelData:
			info.DataLabels[name] = uint32(l.value)
		}
	}
	for i, line := range a.lineMap {
		info.Lines[i] = uint32(line)
	}
	return info
}

// Marshal serializes the debug info to canonical CBOR.
func (d *DebugInfo) Marshal() ([]byte, error) {
	return cborEncMode.Marshal(d)
}

// UnmarshalDebugInfo deserializes a debug info sidecar.
func UnmarshalDebugInfo(data []byte) (*DebugInfo, error) {
	var d DebugInfo
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// LineFor returns the source line for an instruction index, or 0 when
// unknown.
func (d *DebugInfo) LineFor(instrIdx int) uint32 {
	if instrIdx < 0 || instrIdx >= len(d.Lines) {
		return 0
	}
	return d.Lines[instrIdx]
}
