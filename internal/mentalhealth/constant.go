package mentalhealth

const (
	DefaultCrisisConfidence   = 0.9
	DefaultTriggerConfidence  = 0.8
	DefaultHighConfidence     = 0.7
	DefaultModerateConfidence = 0.6

	DefaultCrisisResourceCap = 3
	DefaultResourceCap       = 5

	// AlertMessageTemplate takes the session id and the comma-joined triggers.
	AlertMessageTemplate = "CRISIS ALERT: User session %s has expressed concerning language indicating immediate risk. " +
		"Triggers: %s. Immediate intervention may be required."
)

// DefaultThresholds returns the stock confidence constants and caps.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CrisisConfidence:   DefaultCrisisConfidence,
		TriggerConfidence:  DefaultTriggerConfidence,
		HighConfidence:     DefaultHighConfidence,
		ModerateConfidence: DefaultModerateConfidence,
		CrisisResourceCap:  DefaultCrisisResourceCap,
		ResourceCap:        DefaultResourceCap,
	}
}
