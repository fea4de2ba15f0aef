package mentalhealth

import "campus-chatbot/internal/model"

// ConcernResult is the outcome of analysing one message.
type ConcernResult struct {
	Level         model.ConcernLevel
	TriggersFound []string
	Confidence    float64
	Resources     []model.Resource
}

// Detected reports whether any concern was found.
func (r ConcernResult) Detected() bool {
	return r.Level != model.ConcernNone
}

// ResourceIDs returns the ids of the surfaced resources in order.
func (r ConcernResult) ResourceIDs() []string {
	ids := make([]string, 0, len(r.Resources))
	for _, res := range r.Resources {
		ids = append(ids, res.ID)
	}
	return ids
}

// Rendered returns the resources a reply lists: only the immediate ones when
// any is present, otherwise all of them.
func (r ConcernResult) Rendered() []model.Resource {
	var immediate []model.Resource
	for _, res := range r.Resources {
		if res.UrgencyLevel == model.UrgencyImmediate {
			immediate = append(immediate, res)
		}
	}
	if len(immediate) > 0 {
		return immediate
	}
	return r.Resources
}

// Thresholds holds the confidence constants and resource caps of the detector.
type Thresholds struct {
	CrisisConfidence   float64
	TriggerConfidence  float64
	HighConfidence     float64
	ModerateConfidence float64
	CrisisResourceCap  int
	ResourceCap        int
}

// KeywordSet is the in-process keyword list for one language, one slice per tier.
type KeywordSet struct {
	Crisis   []string
	High     []string
	Moderate []string
}

// Config configures the mental-health use case.
type Config struct {
	Thresholds Thresholds
	// Keywords overrides DefaultKeywords when non-nil.
	Keywords map[model.Language]KeywordSet
}

// RecordInteractionInput carries what the caller knows about the conversation
// in which a concern was detected.
type RecordInteractionInput struct {
	ConversationID string
	SessionID      string
	IPAddress      string
	Result         ConcernResult
}

// RecordInteractionOutput reports the records created.
type RecordInteractionOutput struct {
	Interaction model.Interaction
	Alert       *model.CrisisAlert
}
