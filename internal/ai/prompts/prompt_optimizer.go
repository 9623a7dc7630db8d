package prompts

import (
	"fmt"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

// NoCodePlaceholder stands in for an empty code section.
const NoCodePlaceholder = "No code provided"

// FilesProvidedSentence is appended to the code section when files were uploaded.
const FilesProvidedSentence = "\n\nThe user provided %d code file(s) as additional context. Use this information to create a more specific and contextualized prompt."

// Template for the prompt-optimization request.
// Arguments: guide, project idea, code context, files sentence.
func GetPromptOptimizerTemplate() string {
	return `
You are a prompt engineering expert with extensive experience in software development and AI. Your task is to create optimized, professional and extremely effective prompts.

BEST PRACTICES GUIDE:
%s

PROJECT CONTEXT:
Idea/Goal: %s

PROVIDED CODE AND FILES:
%s%s

INSTRUCTIONS FOR CREATING THE PROMPT:

1. **ANALYZE FIRST**: Carefully analyze the project idea and the provided files to understand:
   - The technical context and domain
   - The technologies being used
   - The complexity and scope of the project
   - Possible challenges and specific needs

2. **STRUCTURE THE PROMPT** following best practices:
   - Clear and specific context
   - A role/persona suited to the task
   - Detailed and organized instructions
   - A well-defined output format
   - Examples when appropriate
   - Important constraints and considerations

3. **OPTIMIZE FOR RESULTS**: The prompt must be:
   - Specific enough to avoid ambiguity
   - Complete enough to cover every necessary aspect
   - Structured to be easy to understand
   - Practical and actionable

4. **CONSIDER THE TECHNICAL CONTEXT**: If code files were provided:
   - Reference the specific technologies found
   - Consider code patterns and architecture
   - Include relevant technical details
   - Stay consistent with the technology stack

Create a professional, detailed and optimized prompt that maximizes the chances of getting exceptional results for this specific project. Respond only with the optimized prompt, without additional explanations.
`
}

// BuildOptimizerPrompt fills the template from req.
func BuildOptimizerPrompt(req types.PromptRequest) string {
	code := req.CodeContext
	if code == "" {
		code = NoCodePlaceholder
	}

	filesNote := ""
	if req.FileCount > 0 {
		filesNote = fmt.Sprintf(FilesProvidedSentence, req.FileCount)
	}

	return fmt.Sprintf(GetPromptOptimizerTemplate(), req.GuideText, req.ProjectIdea, code, filesNote)
}
