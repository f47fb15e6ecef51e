package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// StepEvent captures one bring-up step for post-mortem analysis
type StepEvent struct {
	Step   Step   // Step that ran
	Seq    uint8  // Order in which it was recorded
	Failed bool   // Step returned an error
	Value  uint32 // Step-dependent value (clock Hz, reload, baud...)
}

const (
	StepRingSize = 16 // Enough for one full bring-up plus a halt
)

var (
	// debugPrintln is the global debug print function (set by platform code
	// or by BoardSetup once the debug channel is up)
	debugPrintln DebugWriter = nil

	// debugEnabled controls whether DebugPrintln output is active
	debugEnabled bool = false

	// Step capture ring buffer (fixed size, no allocation)
	stepRing     [StepRingSize]StepEvent
	stepRingHead uint8
	stepSeq      uint8
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables DebugPrintln output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordStep captures a bring-up step in the ring buffer.
// Always on; it runs before any output path exists.
func RecordStep(step Step, value uint32, failed bool) {
	idx := stepRingHead
	stepRing[idx] = StepEvent{
		Step:   step,
		Seq:    stepSeq,
		Failed: failed,
		Value:  value,
	}
	stepSeq++
	stepRingHead = (idx + 1) % StepRingSize
}

// StepEvents returns the recorded steps from oldest to newest.
func StepEvents() []StepEvent {
	out := make([]StepEvent, 0, StepRingSize)
	start := stepRingHead
	for i := uint8(0); i < StepRingSize; i++ {
		evt := stepRing[(start+i)%StepRingSize]
		if evt.Step == StepNone {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// DumpStepRing writes the recorded steps through the debug writer.
func DumpStepRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[BOOT] === Step Ring Dump ===")
	for _, evt := range StepEvents() {
		line := "[BOOT] #" + utoa(uint32(evt.Seq)) + " " + evt.Step.String() +
			" v=" + utoa(evt.Value)
		if evt.Failed {
			line += " FAILED"
		}
		debugPrintln(line)
	}
	debugPrintln("[BOOT] === End Dump ===")
}

// ClearStepRing clears the step buffer
func ClearStepRing() {
	for i := range stepRing {
		stepRing[i] = StepEvent{}
	}
	stepRingHead = 0
	stepSeq = 0
}
