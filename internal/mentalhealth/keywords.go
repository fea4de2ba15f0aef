package mentalhealth

import "campus-chatbot/internal/model"

// DefaultKeywords are compiled into the binary and checked before any stored
// trigger, so editing the trigger table can never weaken crisis detection.
var DefaultKeywords = map[model.Language]KeywordSet{
	model.LanguageEnglish: {
		Crisis: []string{
			"suicide", "kill myself", "end my life", "want to die",
			"harm myself", "hurt myself", "self harm", "cutting",
			"overdose", "pills", "jump", "hanging", "weapon",
		},
		High: []string{
			"depression", "depressed", "anxiety", "anxious", "panic",
			"hopeless", "worthless", "alone", "isolated", "empty",
			"overwhelmed", "stressed", "trauma", "ptsd", "abuse",
			"addiction", "substance", "alcohol", "drugs", "cutting",
		},
		Moderate: []string{
			"sad", "worried", "stressed", "upset", "frustrated",
			"angry", "confused", "tired", "exhausted", "burnt out",
			"relationship problems", "family issues", "academic stress",
		},
	},
	model.LanguageShona: {
		Crisis: []string{
			"kuzviuraya", "kufira", "ndinoda kufa", "ndoda kuzviuraya",
			"kuzvirwadza", "kurwadza", "mafuta", "mishonga",
		},
		High: []string{
			"kushushikana", "kusuruvara", "kutya", "kurwara mupfungwa",
			"kushaiwa tariro", "kusina basa", "kusina vanhu", "kusurukirwa",
		},
		Moderate: []string{
			"kushungurudzika", "kunetseka", "kushatirwa", "kutsamwa",
			"kukanganisika", "kuneta", "matambudziko emhuri",
		},
	},
}
