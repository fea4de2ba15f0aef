package usecase

import "campus-chatbot/internal/model"

type replyTemplates struct {
	crisisIntro    string
	crisisClosing  string
	supportIntro   string
	supportClosing string
	noResources    string

	phone        string
	available247 string
	hours        string
}

var templates = map[model.Language]replyTemplates{
	model.LanguageEnglish: {
		crisisIntro:    "🚨 URGENT: If you're in immediate danger, call 999 or go to your nearest emergency room.\n\nImmediate support available:\n\n",
		crisisClosing:  "\n💙 You matter and you're not alone. Help is available.",
		supportIntro:   "I understand you might be going through a difficult time. Here are some resources that can help:\n\n",
		supportClosing: "\n💚 Remember, seeking help is a sign of strength, not weakness.",
		noResources: "I understand you might be going through something difficult. " +
			"While I don't have specific resources immediately available, " +
			"I encourage you to speak with someone you trust or a healthcare professional.",
		phone:        "   Phone: %s\n",
		available247: "   ⏰ Available 24/7\n",
		hours:        "   ⏰ Hours: %s\n",
	},
	model.LanguageShona: {
		crisisIntro:    "🚨 KUKURUMIDZIRA: Kana uri munzvimbo yenjodzi, fona 999 kana uende kuchipatara chakare.\n\nZvimwe zvinokubatsira:\n\n",
		crisisClosing:  "\n💙 Unokosheswa uye uko kusina wega. Rubatsiro ruripo.",
		supportIntro:   "Ndinzwisisa kuti unogona kutambudzika. Heano zvinokubatsira:\n\n",
		supportClosing: "\n💚 Rangarira kuti kutsvaga rubatsiro hakusi urombo. Una simba.",
		noResources: "Ndinzwisisa kuti unogona kushungurudzika. " +
			"Zvisinei kana ndisina rubatsiro chakamira rurikuda, " +
			"ndinokurudzira kuti utaure nemunhu waunoda kana mushandi weutano.",
		phone:        "   Nhare: %s\n",
		available247: "   ⏰ Inoshanda mazuva ose, nguva dzose\n",
		hours:        "   ⏰ Nguva: %s\n",
	},
}

func templatesFor(lang model.Language) replyTemplates {
	if t, ok := templates[lang]; ok {
		return t
	}
	return templates[model.DefaultLanguage]
}
