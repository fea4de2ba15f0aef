package seed

import (
	"campus-chatbot/internal/faq/repository"
	mhRepo "campus-chatbot/internal/mentalhealth/repository"
	"campus-chatbot/internal/model"
)

var (
	bothLanguages = []model.Language{model.LanguageEnglish, model.LanguageShona}
	englishOnly   = []model.Language{model.LanguageEnglish}
)

// Resources is the default support catalogue.
var Resources = []mhRepo.UpsertResourceOptions{
	// crisis
	{
		Title:              "National Emergency Services",
		Description:        "Immediate emergency response for life-threatening situations",
		ResourceType:       "emergency",
		UrgencyLevel:       model.UrgencyImmediate,
		Phone:              "999",
		Available247:       true,
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Zimbabwe",
	},
	{
		Title:              "Zimbabwe Crisis Helpline",
		Description:        "Crisis counseling and immediate support for mental health emergencies",
		ResourceType:       "hotline",
		UrgencyLevel:       model.UrgencyImmediate,
		Phone:              "+263 4 700 505",
		Available247:       true,
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Zimbabwe",
	},
	{
		Title:              "Parirenyatwa Hospital Emergency",
		Description:        "Major hospital with 24/7 emergency psychiatric services",
		ResourceType:       "emergency",
		UrgencyLevel:       model.UrgencyImmediate,
		Phone:              "+263 4 791 631",
		Address:            "Mazowe Street, Harare",
		Available247:       true,
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Harare, Zimbabwe",
	},

	// counseling
	{
		Title:              "University Counseling Center",
		Description:        "Free counseling services for university students",
		ResourceType:       "campus",
		UrgencyLevel:       model.UrgencyGeneral,
		Phone:              "+263 4 303211",
		Email:              "counseling@university.ac.zw",
		Address:            "Student Services Building, Ground Floor",
		HoursOfOperation:   "Monday-Friday 8:00 AM - 5:00 PM",
		LanguagesSupported: bothLanguages,
	},
	{
		Title:              "Samaritans Zimbabwe",
		Description:        "Confidential emotional support for people in distress",
		ResourceType:       "hotline",
		UrgencyLevel:       model.UrgencyUrgent,
		Phone:              "+263 4 722 000",
		Email:              "samaritans@zol.co.zw",
		Available247:       true,
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Zimbabwe",
	},
	{
		Title:              "Friendship Bench",
		Description:        "Community-based mental health support program",
		ResourceType:       "counseling",
		UrgencyLevel:       model.UrgencyGeneral,
		WebsiteURL:         "https://www.friendshipbenchzimbabwe.org",
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Zimbabwe",
	},
	{
		Title:              "Zimbabwe National Association for Mental Health (ZNAMH)",
		Description:        "Support and advocacy for mental health issues",
		ResourceType:       "external",
		UrgencyLevel:       model.UrgencyGeneral,
		Phone:              "+263 4 703 891",
		Email:              "znamh@znamh.co.zw",
		WebsiteURL:         "http://www.znamh.co.zw",
		LanguagesSupported: bothLanguages,
		LocationSpecific:   "Zimbabwe",
	},

	// online and self-help
	{
		Title:              "Crisis Text Line",
		Description:        "Free crisis support via text message",
		ResourceType:       "online",
		UrgencyLevel:       model.UrgencyUrgent,
		Phone:              "Text HOME to 741741",
		Available247:       true,
		LanguagesSupported: englishOnly,
	},
	{
		Title:              "Mental Health America Resources",
		Description:        "Comprehensive mental health information and screening tools",
		ResourceType:       "online",
		UrgencyLevel:       model.UrgencyPreventive,
		WebsiteURL:         "https://www.mhanational.org",
		LanguagesSupported: englishOnly,
	},
	{
		Title:              "Headspace App",
		Description:        "Guided meditation and mindfulness app",
		ResourceType:       "app",
		UrgencyLevel:       model.UrgencyPreventive,
		WebsiteURL:         "https://www.headspace.com",
		LanguagesSupported: englishOnly,
	},
}

// Triggers are the stored phrases checked after the crisis keywords.
var Triggers = []mhRepo.UpsertTriggerOptions{
	{Phrase: "want to kill myself", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "going to end my life", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "suicide", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "want to die", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "harm myself", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "hurt myself", Language: model.LanguageEnglish, ConcernLevel: model.ConcernCrisis},
	{Phrase: "ndinoda kuzviuraya", Language: model.LanguageShona, ConcernLevel: model.ConcernCrisis},
	{Phrase: "ndinoda kufa", Language: model.LanguageShona, ConcernLevel: model.ConcernCrisis},
	{Phrase: "ndinoda kuzvirwadza", Language: model.LanguageShona, ConcernLevel: model.ConcernCrisis},

	{Phrase: "severely depressed", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "panic attacks", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "cant cope anymore", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "feeling hopeless", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "severe anxiety", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "mental breakdown", Language: model.LanguageEnglish, ConcernLevel: model.ConcernHigh},
	{Phrase: "kushushikana kwakanyanya", Language: model.LanguageShona, ConcernLevel: model.ConcernHigh},
	{Phrase: "kusina tariro", Language: model.LanguageShona, ConcernLevel: model.ConcernHigh},
	{Phrase: "kurwara mupfungwa", Language: model.LanguageShona, ConcernLevel: model.ConcernHigh},

	{Phrase: "feeling sad", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "very stressed", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "overwhelmed", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "having trouble sleeping", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "family problems", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "relationship issues", Language: model.LanguageEnglish, ConcernLevel: model.ConcernModerate},
	{Phrase: "ndiri kushungurudzika", Language: model.LanguageShona, ConcernLevel: model.ConcernModerate},
	{Phrase: "ndiri kuneta", Language: model.LanguageShona, ConcernLevel: model.ConcernModerate},
	{Phrase: "matambudziko emhuri", Language: model.LanguageShona, ConcernLevel: model.ConcernModerate},
}

// linkedUrgencies maps a trigger's level to the urgencies of its suggested resources.
var linkedUrgencies = map[model.ConcernLevel][]model.UrgencyLevel{
	model.ConcernCrisis:   {model.UrgencyImmediate},
	model.ConcernHigh:     {model.UrgencyImmediate, model.UrgencyUrgent},
	model.ConcernModerate: {model.UrgencyUrgent, model.UrgencyGeneral},
}

// FAQs are the sample answers for common campus questions.
var FAQs = []repository.UpsertFAQOptions{
	{
		Question: "How do I register for courses?",
		Answer:   "You can register for courses through the student portal. Log in with your student ID and password, then navigate to Course Registration.",
		Language: model.LanguageEnglish,
		Category: "Registration",
		Keywords: []string{"register", "course", "registration", "enroll", "enrollment"},
	},
	{
		Question: "What are the library hours?",
		Answer:   "The library is open Monday-Friday 8:00 AM to 10:00 PM, Saturday 9:00 AM to 6:00 PM, and Sunday 12:00 PM to 8:00 PM.",
		Language: model.LanguageEnglish,
		Category: "Campus Services",
		Keywords: []string{"library", "hours", "time", "open", "close"},
	},
	{
		Question: "How do I access my grades?",
		Answer:   "You can access your grades through the student portal. Go to Academic Records > View Grades to see your current and past semester grades.",
		Language: model.LanguageEnglish,
		Category: "Academics",
		Keywords: []string{"grades", "marks", "results", "academic", "transcript"},
	},
	{
		Question: "Where is the student support center?",
		Answer:   "The Student Support Center is located in Building A, Ground Floor, Room 105. Office hours are Monday-Friday 8:00 AM to 5:00 PM.",
		Language: model.LanguageEnglish,
		Category: "Campus Services",
		Keywords: []string{"support", "help", "assistance", "building", "location"},
	},
	{
		Question: "How do I pay my fees?",
		Answer:   "You can pay fees online through the student portal, at the bank using your student number, or at the bursar office in cash or card.",
		Language: model.LanguageEnglish,
		Category: "Finance",
		Keywords: []string{"fees", "payment", "pay", "money", "bursar", "finance"},
	},
	{
		Question: "Ndinonyoresa sei makosi?",
		Answer:   "Unogona kunyoresa makosi kuburikidza neStudent Portal. Pinda neStudent ID yako nepassword, wobva waenda kuCourse Registration.",
		Language: model.LanguageShona,
		Category: "Registration",
		Keywords: []string{"nyoresa", "kosi", "registration", "enroll"},
	},
	{
		Question: "Nguva dzei dzinoshanda library?",
		Answer:   "Library inoshanda Muvhuro kusvika Chishanu 8:00 mangwanani kusvika 10:00 madekwana, Mugovera 9:00 mangwanani kusvika 6:00 madekwana, uye Svondo 12:00 masikati kusvika 8:00 madekwana.",
		Language: model.LanguageShona,
		Category: "Campus Services",
		Keywords: []string{"library", "nguva", "time", "vhura", "vhara"},
	},
	{
		Question: "Ndinoona sei grades dzangu?",
		Answer:   "Unogona kuona grades dzako kuburikidza neStudent Portal. Enda kuAcademic Records > View Grades kuti uone grades dzako dzezvino nedziakare.",
		Language: model.LanguageShona,
		Category: "Academics",
		Keywords: []string{"grades", "marks", "mibvunzo", "academic"},
	},
	{
		Question: "Iri kupi Student Support Center?",
		Answer:   "Student Support Center iri muBuilding A, Ground Floor, Room 105. Office hours ndiMuvhuro kusvika Chishanu 8:00 mangwanani kusvika 5:00 madekwana.",
		Language: model.LanguageShona,
		Category: "Campus Services",
		Keywords: []string{"support", "rubatsiro", "building", "location"},
	},
}
