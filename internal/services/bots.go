package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

// The bots below are the template-substitution cores of the blog, ebook,
// outreach-email and freelance automations. Browser automation and real
// third-party delivery are out of scope; outcomes are simulated so results
// stay inspectable through the bot-run history.

var blogNiches = []string{"personal finance", "productivity", "remote work", "side hustles", "tech reviews"}

var blogTitleTemplates = []string{
	"10 Proven Ways to Make Money with %s",
	"The Beginner's Guide to %s in 2026",
	"How I Turned %s into a $500/month Side Income",
	"%s Mistakes That Are Costing You Money",
}

// BlogBot fabricates a monetizable blog post outline for a random niche.
type BlogBot struct{}

func (BlogBot) Name() string { return "blog_bot" }

func (BlogBot) Run(ctx context.Context) (map[string]interface{}, error) {
	niche := blogNiches[rand.Intn(len(blogNiches))]
	title := fmt.Sprintf(blogTitleTemplates[rand.Intn(len(blogTitleTemplates))], niche)

	sections := []string{
		"Introduction: why " + niche + " matters now",
		"Getting started with zero budget",
		"Tools and platforms worth using",
		"Monetization: ads, affiliates, digital products",
		"Common pitfalls and how to avoid them",
		"Conclusion and next steps",
	}

	return map[string]interface{}{
		"niche":              niche,
		"title":              title,
		"sections":           sections,
		"word_count_target":  1500 + rand.Intn(1500),
		"monetization":       []string{"display ads", "affiliate links", "email list"},
		"estimated_earnings": "$50-200/month per post once ranked",
	}, nil
}

var ebookTopics = []string{
	"Freelancing from Zero",
	"Passive Income with Digital Products",
	"Dropshipping on a Budget",
	"Investing Basics for Beginners",
}

// EbookBot drafts an eBook package: chapter list, pricing and listing copy.
type EbookBot struct{}

func (EbookBot) Name() string { return "ebook_bot" }

func (EbookBot) Run(ctx context.Context) (map[string]interface{}, error) {
	topic := ebookTopics[rand.Intn(len(ebookTopics))]

	chapters := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		chapters = append(chapters, fmt.Sprintf("Chapter %d: %s, part %d", i, topic, i))
	}

	price := 9.99 + float64(rand.Intn(3))*5

	return map[string]interface{}{
		"topic":       topic,
		"chapters":    chapters,
		"page_target": 40 + rand.Intn(40),
		"price_usd":   price,
		"listing_copy": fmt.Sprintf(
			"%s: a practical, no-fluff guide. %d chapters of step-by-step advice you can apply today.",
			topic, len(chapters)),
		"estimated_earnings": "$30-150/month per title",
	}, nil
}

var outreachNiches = []string{"local restaurants", "fitness studios", "online coaches", "e-commerce stores"}

// EmailBot drafts outreach emails for simulated prospects and models a
// response rate; nothing is actually sent.
type EmailBot struct{}

func (EmailBot) Name() string { return "email_bot" }

func (EmailBot) Run(ctx context.Context) (map[string]interface{}, error) {
	niche := outreachNiches[rand.Intn(len(outreachNiches))]
	prospects := 10 + rand.Intn(20)
	responseRate := 0.05 + rand.Float64()*0.10

	subject := fmt.Sprintf("Quick idea for growing your %s business", strings.TrimSuffix(niche, "s"))
	body := fmt.Sprintf(`Hi there,

I help %s get more customers through better online content. I noticed a few
quick wins on your site and put together three concrete suggestions. Happy
to share them, no strings attached.

Would a short call this week work?`, niche)

	return map[string]interface{}{
		"niche":              niche,
		"prospects_drafted":  prospects,
		"subject":            subject,
		"body":               body,
		"simulated_replies":  int(float64(prospects) * responseRate),
		"response_rate":      fmt.Sprintf("%.0f%%", responseRate*100),
		"estimated_earnings": "$100-500 per closed client",
	}, nil
}

var freelanceSkills = []string{"content_writing", "web_development", "graphic_design", "digital_marketing", "virtual_assistant"}

var proposalRates = map[string]string{
	"content_writing":   "$15-50/hour",
	"web_development":   "$25-75/hour",
	"graphic_design":    "$20-55/hour",
	"digital_marketing": "$20-60/hour",
	"virtual_assistant": "$8-25/hour",
}

// FreelanceBot drafts a platform proposal for a random skill category and a
// simulated batch of matching opportunities.
type FreelanceBot struct{}

func (FreelanceBot) Name() string { return "freelance_bot" }

func (FreelanceBot) Run(ctx context.Context) (map[string]interface{}, error) {
	skill := freelanceSkills[rand.Intn(len(freelanceSkills))]
	opportunities := 3 + rand.Intn(12)

	proposal := fmt.Sprintf(`Dear Hiring Manager,

I specialize in %s and can deliver exactly what you need:

1. Initial consultation to understand your specific needs
2. Detailed project timeline and milestones
3. Regular updates and progress reports
4. High-quality deliverables that exceed expectations
5. Post-project support and revisions if needed

My rate for this type of project is %s, but I'm happy to discuss pricing
based on your requirements and budget.

Best regards`, strings.ReplaceAll(skill, "_", " "), proposalRates[skill])

	return map[string]interface{}{
		"skill_category":      skill,
		"platforms":           []string{"upwork", "fiverr", "freelancer"},
		"opportunities_found": opportunities,
		"sample_proposal":     proposal,
		"daily_goal":          "5-10 applications per platform",
		"estimated_earnings":  "$500-2000/month for active freelancers",
	}, nil
}

// RegisterDefaultBots wires the standard bot set into a runner.
func RegisterDefaultBots(r *BotRunner) {
	r.Register(BlogBot{})
	r.Register(EbookBot{})
	r.Register(EmailBot{})
	r.Register(FreelanceBot{})
}
