package trust

import "fmt"

// Config is the full trust engine configuration bundle.
type Config struct {
	InitialScore               int                `yaml:"initialScore" json:"initialScore"`
	FloorScore                 int                `yaml:"floorScore" json:"floorScore"`
	CeilingScore               int                `yaml:"ceilingScore" json:"ceilingScore"`
	DecayTargetScore           int                `yaml:"decayTargetScore" json:"decayTargetScore"`
	DecayCeiling               int                `yaml:"decayCeiling" json:"decayCeiling"`
	InactivityThresholdTicks   int64              `yaml:"inactivityThresholdTicks" json:"inactivityThresholdTicks"`
	DecayRatePerTick           int                `yaml:"decayRatePerTick" json:"decayRatePerTick"`
	DiminishingReturnThreshold int                `yaml:"diminishingReturnThreshold" json:"diminishingReturnThreshold"`
	DiminishingReturnFactor    float64            `yaml:"diminishingReturnFactor" json:"diminishingReturnFactor"`
	RiskWeightingEnabled       bool               `yaml:"riskWeightingEnabled" json:"riskWeightingEnabled"`
	RiskWeights                map[string]float64 `yaml:"riskWeights" json:"riskWeights"`
}

// DefaultConfig returns the baseline configuration. Decay is off until a
// calibration profile or reconfigure turns it on.
func DefaultConfig() Config {
	return Config{
		InitialScore:               50,
		FloorScore:                 0,
		CeilingScore:               100,
		DecayTargetScore:           50,
		DecayCeiling:               50,
		InactivityThresholdTicks:   0,
		DecayRatePerTick:           0,
		DiminishingReturnThreshold: 90,
		DiminishingReturnFactor:    0.5,
		RiskWeightingEnabled:       false,
		RiskWeights: map[string]float64{
			"trivial": 0.5,
			"small":   0.75,
			"medium":  1.0,
			"large":   1.5,
			"unknown": 1.0,
		},
	}
}

// ConfigPatch is a partial configuration for Reconfigure. Nil fields keep the
// current value.
type ConfigPatch struct {
	InitialScore               *int               `yaml:"initialScore" json:"initialScore,omitempty"`
	FloorScore                 *int               `yaml:"floorScore" json:"floorScore,omitempty"`
	CeilingScore               *int               `yaml:"ceilingScore" json:"ceilingScore,omitempty"`
	DecayTargetScore           *int               `yaml:"decayTargetScore" json:"decayTargetScore,omitempty"`
	DecayCeiling               *int               `yaml:"decayCeiling" json:"decayCeiling,omitempty"`
	InactivityThresholdTicks   *int64             `yaml:"inactivityThresholdTicks" json:"inactivityThresholdTicks,omitempty"`
	DecayRatePerTick           *int               `yaml:"decayRatePerTick" json:"decayRatePerTick,omitempty"`
	DiminishingReturnThreshold *int               `yaml:"diminishingReturnThreshold" json:"diminishingReturnThreshold,omitempty"`
	DiminishingReturnFactor    *float64           `yaml:"diminishingReturnFactor" json:"diminishingReturnFactor,omitempty"`
	RiskWeightingEnabled       *bool              `yaml:"riskWeightingEnabled" json:"riskWeightingEnabled,omitempty"`
	RiskWeights                map[string]float64 `yaml:"riskWeights" json:"riskWeights,omitempty"`
}

// apply merges the patch into cfg.
func (p ConfigPatch) apply(cfg *Config) {
	if p.InitialScore != nil {
		cfg.InitialScore = *p.InitialScore
	}
	if p.FloorScore != nil {
		cfg.FloorScore = *p.FloorScore
	}
	if p.CeilingScore != nil {
		cfg.CeilingScore = *p.CeilingScore
	}
	if p.DecayTargetScore != nil {
		cfg.DecayTargetScore = *p.DecayTargetScore
	}
	if p.DecayCeiling != nil {
		cfg.DecayCeiling = *p.DecayCeiling
	}
	if p.InactivityThresholdTicks != nil {
		cfg.InactivityThresholdTicks = *p.InactivityThresholdTicks
	}
	if p.DecayRatePerTick != nil {
		cfg.DecayRatePerTick = *p.DecayRatePerTick
	}
	if p.DiminishingReturnThreshold != nil {
		cfg.DiminishingReturnThreshold = *p.DiminishingReturnThreshold
	}
	if p.DiminishingReturnFactor != nil {
		cfg.DiminishingReturnFactor = *p.DiminishingReturnFactor
	}
	if p.RiskWeightingEnabled != nil {
		cfg.RiskWeightingEnabled = *p.RiskWeightingEnabled
	}
	if p.RiskWeights != nil {
		cfg.RiskWeights = p.RiskWeights
	}
}

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

// CalibrationProfiles are the named partial configs selectable at runtime.
// conservative trusts slowly and decays fast; permissive is the opposite;
// balanced sits between them.
var CalibrationProfiles = map[string]ConfigPatch{
	"conservative": {
		InitialScore:               intPtr(40),
		DecayTargetScore:           intPtr(40),
		InactivityThresholdTicks:   int64Ptr(3),
		DecayRatePerTick:           intPtr(2),
		DiminishingReturnThreshold: intPtr(80),
		RiskWeightingEnabled:       boolPtr(true),
	},
	"balanced": {
		InitialScore:               intPtr(50),
		DecayTargetScore:           intPtr(50),
		InactivityThresholdTicks:   int64Ptr(10),
		DecayRatePerTick:           intPtr(1),
		DiminishingReturnThreshold: intPtr(90),
		RiskWeightingEnabled:       boolPtr(true),
	},
	"permissive": {
		InitialScore:               intPtr(60),
		DecayTargetScore:           intPtr(55),
		DecayCeiling:               intPtr(60),
		InactivityThresholdTicks:   int64Ptr(25),
		DecayRatePerTick:           intPtr(1),
		DiminishingReturnThreshold: intPtr(95),
		DiminishingReturnFactor:    floatPtr(0.75),
		RiskWeightingEnabled:       boolPtr(false),
	},
}

// ProfileNames lists the available calibration profiles.
func ProfileNames() []string {
	return []string{"conservative", "balanced", "permissive"}
}

// LookupProfile returns the named calibration profile.
func LookupProfile(name string) (ConfigPatch, error) {
	patch, ok := CalibrationProfiles[name]
	if !ok {
		return ConfigPatch{}, fmt.Errorf("unknown calibration profile %q", name)
	}
	return patch, nil
}
