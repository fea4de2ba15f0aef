package model

import "fmt"

// ConcernLevel is the severity of a mental-health signal.
// The numeric value is the severity rank: a higher value is more severe.
type ConcernLevel int

const (
	ConcernNone ConcernLevel = iota
	// ConcernLow only comes from stored triggers; the keyword lists never produce it.
	ConcernLow
	ConcernModerate
	ConcernHigh
	ConcernCrisis
)

var concernLevelNames = map[ConcernLevel]string{
	ConcernNone:     "none",
	ConcernLow:      "low",
	ConcernModerate: "moderate",
	ConcernHigh:     "high",
	ConcernCrisis:   "crisis",
}

func (c ConcernLevel) String() string {
	if name, ok := concernLevelNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ConcernLevel(%d)", int(c))
}

// MoreSevereThan reports whether c ranks above other.
func (c ConcernLevel) MoreSevereThan(other ConcernLevel) bool {
	return c > other
}

// RequiresFollowUp reports whether a human should follow up on the interaction.
func (c ConcernLevel) RequiresFollowUp() bool {
	return c >= ConcernHigh
}

// ParseConcernLevel maps a stored name back to its ConcernLevel.
func ParseConcernLevel(s string) (ConcernLevel, error) {
	for level, name := range concernLevelNames {
		if name == s {
			return level, nil
		}
	}
	return ConcernNone, fmt.Errorf("unknown concern level %q", s)
}

// UrgencyLevel classifies how quickly a resource responds.
// Lower values are more urgent and sort first.
type UrgencyLevel int

const (
	UrgencyImmediate UrgencyLevel = iota
	UrgencyUrgent
	UrgencyGeneral
	UrgencyPreventive
)

var urgencyLevelNames = map[UrgencyLevel]string{
	UrgencyImmediate:  "immediate",
	UrgencyUrgent:     "urgent",
	UrgencyGeneral:    "general",
	UrgencyPreventive: "preventive",
}

func (u UrgencyLevel) String() string {
	if name, ok := urgencyLevelNames[u]; ok {
		return name
	}
	return fmt.Sprintf("UrgencyLevel(%d)", int(u))
}

// ParseUrgencyLevel maps a stored name back to its UrgencyLevel.
func ParseUrgencyLevel(s string) (UrgencyLevel, error) {
	for level, name := range urgencyLevelNames {
		if name == s {
			return level, nil
		}
	}
	return UrgencyGeneral, fmt.Errorf("unknown urgency level %q", s)
}
