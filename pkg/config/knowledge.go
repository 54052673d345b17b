package config

import "time"

// CheckpointConfig tunes snapshot retention and the periodic capture sweep.
type CheckpointConfig struct {
	// MaxPerAgent caps stored checkpoints per agent; oldest pruned first.
	MaxPerAgent int

	// SweepIntervalTicks captures every running agent each N ticks so a
	// crashed control plane can resume from recent state. 0 disables.
	SweepIntervalTicks int64

	// SweepCaptureTimeout bounds each capture call during a sweep.
	SweepCaptureTimeout time.Duration
}

// DefaultCheckpointConfig returns the built-in checkpoint defaults.
func DefaultCheckpointConfig() *CheckpointConfig {
	return &CheckpointConfig{
		MaxPerAgent:         3,
		SweepIntervalTicks:  10,
		SweepCaptureTimeout: 15 * time.Second,
	}
}

// CoherenceConfig tunes the periodic artifact scan.
type CoherenceConfig struct {
	// ScanIntervalTicks runs the duplicate/dangling-source scan each N
	// ticks. 0 disables.
	ScanIntervalTicks int64

	// ScanTimeout bounds one scan pass.
	ScanTimeout time.Duration
}

// DefaultCoherenceConfig returns the built-in scan defaults.
func DefaultCoherenceConfig() *CoherenceConfig {
	return &CoherenceConfig{
		ScanIntervalTicks: 10,
		ScanTimeout:       30 * time.Second,
	}
}

// QuarantineConfig caps rejected-event retention.
type QuarantineConfig struct {
	// MaxEntries caps stored quarantined events; oldest evicted first.
	MaxEntries int `yaml:"max_entries"`
}

// DefaultQuarantineConfig returns the built-in quarantine defaults.
func DefaultQuarantineConfig() *QuarantineConfig {
	return &QuarantineConfig{
		MaxEntries: 200,
	}
}
