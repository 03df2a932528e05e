// Package trace records per-step execution events in a compact binary
// stream. Records describe what happened, not resumable interpreter
// state: a trace can be inspected after the fact but not resumed.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical options so the same run always produces the
// same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// StepRecord describes one executed step.
type StepRecord struct {
	Step    int    `cbor:"step"`    // 1-based step count
	X       int    `cbor:"x"`       // program counter column after the step
	Y       int    `cbor:"y"`       // program counter row after the step
	Command string `cbor:"command"` // glyph under the program counter after the step
	Depth   int    `cbor:"depth"`   // stack depth after the step
	Output  int    `cbor:"output"`  // output length so far, in bytes
}

// Recorder appends CBOR-encoded step records to a writer.
type Recorder struct {
	enc *cbor.Encoder
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: cborEncMode.NewEncoder(w)}
}

// Record appends one step record to the stream.
func (r *Recorder) Record(rec StepRecord) error {
	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("trace: encode step %d: %w", rec.Step, err)
	}
	return nil
}

// ReadAll decodes every step record from a recorded stream.
func ReadAll(r io.Reader) ([]StepRecord, error) {
	dec := cbor.NewDecoder(r)
	var records []StepRecord
	for {
		var rec StepRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("trace: decode record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
}
