package book

// EngineConfig configures a Book/Evaluator pair built together by New.
// There is no file or environment-variable form; the embedder constructs
// one in code.
type EngineConfig struct {
	// StartSequence is the first sequence number the Evaluator will
	// assign to a resting order. Non-zero when an Evaluator resumes
	// where an earlier one left off (see Evaluator.Sequence), so
	// sequence numbers stay monotonic across the Book's full lifetime
	// rather than resetting.
	StartSequence uint64
	// DefaultSTP applies to any order that does not implement
	// STPPolicer.
	DefaultSTP STPPolicy
}

// DefaultEngineConfig returns the zero-friendly configuration: sequence
// numbers starting at zero, self-trade prevention defaulting to STPSkip.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{StartSequence: 0, DefaultSTP: STPSkip}
}
