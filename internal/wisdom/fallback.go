package wisdom

// Served whenever Gemini is unreachable or unconfigured. Same texts the app
// has always shipped with.
var (
	fallbackQuote = Quote{
		Quote:  "静心站立，感受天地的律动。",
		Author: "古德",
		Advice: "虚灵顶劲，沉肩坠肘，让气息自然流动。",
	}

	fallbackBlessing = Blessing{
		Title:   "功德圆满",
		Message: "每一次静立都是对灵魂的洗涤，愿您气血充盈，神清气爽。",
	}
)

func FallbackQuote() Quote {
	return fallbackQuote
}

func FallbackBlessing() Blessing {
	return fallbackBlessing
}
