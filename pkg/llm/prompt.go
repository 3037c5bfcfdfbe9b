package llm

import (
	"fmt"
	"strings"
)

const (
	wordLimit   = 130
	temperature = 0.3
	maxTokens   = 1000
)

var systemPrompt = fmt.Sprintf(`You are an expert Shopify Launch Consultant who crafts success stories about merchant launches.
Your role is to transform launch notes into consistently structured, professional stories.
You must STRICTLY follow the provided format and rules without deviation.
Never exceed the %d word limit.
Never make up or embellish facts - use ONLY the provided information.
If information for any section is missing, write "No information provided" for that section.`, wordLimit)

const storyTemplate = `Transform these launch notes into a structured success story following this EXACT format:

MERCHANT: %s
ORIGINAL NOTES: %s

Your response must follow this EXACT structure with these EXACT headings:

CHALLENGE:
[1-2 sentences describing the main challenge or goal the merchant faced]

SOLUTION:
[1-2 sentences explaining what specific Shopify solutions or features were implemented]

OUTCOME:
[1-2 sentences highlighting quantifiable results, improvements, or positive impact]

STRICT FORMATTING RULES:
1. Use EXACTLY the headings shown above: CHALLENGE, SOLUTION, OUTCOME
2. Each section must be 1-2 sentences only
3. Total word count must not exceed %d words
4. Use clear, professional language - no marketing fluff
5. Include specific details and numbers when available
6. Start each section with an action verb when possible
7. Write in third person perspective
8. Use past tense consistently

TONE REQUIREMENTS:
- Professional and direct
- Factual and specific
- No superlatives or exaggeration
- No casual or conversational language
- No adjectives unless describing measurable qualities

If any section lacks information, write "No information provided" for that section.

Format your response exactly as shown above, with clear headings and sections.`

func buildUserPrompt(input EnhanceInput) string {
	merchant := strings.TrimSpace(input.MerchantName)
	if merchant == "" {
		merchant = "Unknown merchant"
	}

	prompt := fmt.Sprintf(storyTemplate, merchant, strings.TrimSpace(input.Notes), wordLimit)

	if extra := strings.TrimSpace(input.AdditionalPrompt); extra != "" {
		prompt += "\n\nADDITIONAL INSTRUCTIONS FROM THE CONSULTANT (the rules above still apply):\n" + extra
	}

	return prompt
}

// cleanStoryResponse strips code fences some models wrap plain text in.
func cleanStoryResponse(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if nl := strings.Index(content, "\n"); nl >= 0 && !strings.Contains(content[:nl], " ") {
			content = content[nl+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}
