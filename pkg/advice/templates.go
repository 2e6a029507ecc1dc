package advice

// Response template sets keyed by feature id. "[input]" is replaced with the
// user's input; "[calculated]" only appears in future-patrimoine templates
// and is replaced with the projected portfolio value.
var responseTemplates = map[string][]string{
	"keep-or-sell": {
		"After analyzing [input], it's advisable to keep it. Market indicators suggest a potential 5-10% growth in the next 3 months.",
		"Based on recent performance and market trends, holding [input] is recommended. The asset shows strong fundamentals and potential for continued growth.",
		"For [input], our analysis indicates it's best to hold. While there's some volatility, the long-term outlook remains positive with projected stability.",
	},
	"sell-asset": {
		"Based on recent volatility, selling [input] now could lock in profits before a predicted dip in the market.",
		"Our analysis suggests that [input] may face headwinds in the coming months. Consider selling to protect your gains and reinvest elsewhere.",
		"For [input], the technical indicators point to a potential downturn. Selling now might be prudent to avoid possible losses.",
	},
	"better-candidate": {
		"Compared to [input], NVDA offers a stronger growth outlook with a 15% projected return based on AI market expansion.",
		"As an alternative to [input], consider AMD which shows better momentum and growth potential in the semiconductor sector.",
		"Instead of [input], our analysis suggests VTI (Vanguard Total Stock Market ETF) for better diversification and steady returns.",
	},
	"analyze-stocks": {
		"Your portfolio of [input] is balanced, but some components show signs of underperformance. Consider diversifying further into different sectors.",
		"Analysis of [input] reveals a tech-heavy allocation. Consider adding some value stocks or dividend payers to balance risk.",
		"The stocks [input] have a combined beta of 1.2, indicating higher volatility than the market. Consider adding some defensive stocks for balance.",
	},
	"analyze-patrimoine": {
		"Your patrimoine is solid, but allocating 20% more to bonds could reduce risk while maintaining growth potential. Consider increasing exposure to international markets for better diversification.",
		"Your current asset allocation shows good diversification, but there's room for improvement. Consider adding alternative investments like REITs or precious metals to further diversify.",
		"Analysis of your patrimoine indicates a slight overexposure to growth stocks. Consider rebalancing with more value-oriented investments to weather potential market corrections.",
	},
	"future-patrimoine": {
		"Assuming a 4% annual return, your patrimoine could grow to approximately €[calculated] in [input] years. This projection accounts for current market conditions and historical performance.",
		"Based on your current setup and a conservative 3.5% growth rate, your patrimoine could reach about €[calculated] in [input] years. Consider increasing your regular contributions to accelerate growth.",
		"With your current allocation and a 5% projected annual return, your patrimoine may grow to roughly €[calculated] in [input] years. Market fluctuations could affect this estimate.",
	},
	"finance-news": {
		"Tech stocks rallied 3% this week, driven by strong earnings from major players. Meanwhile, the Fed signaled potential rate cuts later this year, boosting market sentiment.",
		"Energy sector faced headwinds as oil prices dropped 5% due to increased supply concerns. In contrast, renewable energy stocks showed resilience with modest gains.",
		"Global markets showed mixed results as inflation data came in higher than expected in Europe, while Asian markets benefited from China's new economic stimulus package.",
	},
}

// fallbackResponse is used for feature ids with no template set.
const fallbackResponse = "Analysis complete. Thank you for using our AI advisor."
