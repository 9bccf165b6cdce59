package gemini

import "fmt"

// reviewPromptTemplate es la plantilla fija de reseña. El diff se incrusta
// completo y sin modificar; no hay truncado previo.
const reviewPromptTemplate = `You are an expert code reviewer. Your goal is to provide a brief, helpful summary of the changes in this pull request.
Please analyze the following code diff and provide a high-level summary in a few bullet points.
Code Diff:
` + "```diff" + `
%s
` + "```" + `
Your review:
`

func buildReviewPrompt(diff string) string {
	return fmt.Sprintf(reviewPromptTemplate, diff)
}
