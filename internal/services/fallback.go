package services

import (
	"fmt"
	"strings"
)

// StrategyCategory is the closed set of fallback strategy categories.
type StrategyCategory string

const (
	CategoryFreelance  StrategyCategory = "freelance"
	CategoryOnline     StrategyCategory = "online"
	CategoryEcommerce  StrategyCategory = "ecommerce"
	CategoryInvestment StrategyCategory = "investment"
)

// Keyword sets tested in priority order; first match wins.
var categoryKeywords = []struct {
	category StrategyCategory
	keywords []string
}{
	{CategoryFreelance, []string{"freelance", "gig", "service"}},
	{CategoryOnline, []string{"online", "digital", "internet"}},
	{CategoryEcommerce, []string{"sell", "product", "ecommerce"}},
	{CategoryInvestment, []string{"invest", "stock", "crypto"}},
}

var categoryStrategies = map[StrategyCategory]string{
	CategoryFreelance: `1. Create profiles on Upwork, Fiverr, and Freelancer
2. Identify your core skills (writing, design, programming, etc.)
3. Start with competitive pricing to build reviews
4. Focus on quick turnaround projects initially
5. Gradually increase rates as you build reputation
6. Aim for $20-50/hour within first month
7. Scale by offering package deals and retainer clients`,

	CategoryOnline: `1. Choose a profitable niche (health, finance, tech)
2. Create valuable content (blog, YouTube, social media)
3. Build an email list of potential customers
4. Develop digital products (courses, ebooks, tools)
5. Use affiliate marketing for passive income
6. Monetize through ads, sponsorships, and partnerships
7. Scale with automation and outsourcing`,

	CategoryEcommerce: `1. Research trending products with low competition
2. Find reliable suppliers (Alibaba, local manufacturers)
3. Create an online store (Shopify, Amazon FBA)
4. Optimize product listings with SEO
5. Run targeted social media ads
6. Focus on customer service and reviews
7. Expand product line based on successful items`,

	CategoryInvestment: `1. Start with index funds for stable growth
2. Learn about dividend stocks for passive income
3. Consider REITs for real estate exposure
4. Use dollar-cost averaging for consistent investing
5. Keep emergency fund of 3-6 months expenses
6. Diversify across asset classes and sectors
7. Reinvest profits to compound returns`,
}

// ClassifyPrompt assigns the prompt to exactly one category by testing the
// fixed keyword sets in priority order. Defaults to online.
func ClassifyPrompt(prompt string) StrategyCategory {
	promptLower := strings.ToLower(prompt)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(promptLower, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOnline
}

// FallbackStrategy is the deterministic strategy generator used when the
// primary generative path is unavailable. Same prompt, same output.
func FallbackStrategy(prompt string) string {
	category := ClassifyPrompt(prompt)
	baseStrategy := categoryStrategies[category]

	return fmt.Sprintf(`**Money-Making Strategy for: %s**

%s

**Quick Start Actions:**
1. Set up necessary accounts today
2. Complete profile/setup within 24 hours
3. Launch first offering within 48 hours
4. Track daily progress and earnings
5. Optimize based on results weekly

**Expected Timeline:**
- Week 1: Setup and first attempts ($0-50)
- Week 2-4: Build momentum ($50-200/week)
- Month 2-3: Scale operations ($200-500/week)
- Month 4+: Full optimization ($500+/week)

Remember: Success requires consistent action and adaptation!`, prompt, baseStrategy)
}
