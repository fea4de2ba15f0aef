package translator

import "time"

const (
	LangEnglish = "en"
	LangShona   = "sn"

	DefaultTimeout = 5 * time.Second
)

// shonaIndicators are common Shona words used when the service cannot tell.
var shonaIndicators = []string{
	"mhoro", "mangwanani", "masikati", "manheru", "ndeipi", "zvakanaka",
	"tinotenda", "pamusoroi", "hongu", "kwete", "sei", "rinhi", "ripi",
	"makadii", "zita", "renyu", "ndiani", "ndiri", "ndinoda", "handina",
	"mukoma", "hanzvadzi", "amai", "baba", "mwana", "mukomana", "musikana",
}
