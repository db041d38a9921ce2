package service

import (
	"strings"

	"devboost/internal/llm"
	"devboost/internal/model"
)

const testsPrompt = `You are an expert software testing engineer. Generate comprehensive test cases for the following code. Include unit tests with edge cases, error handling, and boundary conditions. Use a popular testing framework syntax (Jest/Vitest).

Code to test:
{{code}}

Generate complete, runnable test code with:
1. Test suite setup
2. Multiple test cases covering different scenarios
3. Edge cases and error handling
4. Clear test descriptions
5. Assertions

Return only the test code, no explanations.`

const docsPrompt = `You are an expert technical writer. Generate comprehensive documentation for the following code as JSDoc/TSDoc style comments.

Code to document:
{{code}}

Generate documentation with:
1. Function/class description
2. Parameter descriptions with types
3. Return value description
4. Usage examples
5. Any important notes or warnings
6. Edge cases to be aware of

Format as JSDoc/TSDoc comments that can be added directly to the code.`

const reviewPrompt = `You are an expert code reviewer. Analyze the following code and identify issues related to:
- Security vulnerabilities
- Performance problems
- Code quality and best practices
- Error handling
- Type safety
- Maintainability

Code to review:
{{code}}

For each issue found, provide:
- severity: "critical" for security/breaking issues, "warning" for performance/quality issues, "info" for suggestions
- category: brief category name (e.g., "Security", "Performance", "Best Practice")
- message: clear description of the issue
- suggestion: specific recommendation to fix it

If the code is good, return an empty issues array or provide positive feedback as "info" severity.`

// renderPrompt fences code inside template. The code is inserted verbatim.
func renderPrompt(template, code string) string {
	return strings.Replace(template, "{{code}}", "```\n"+code+"\n```", 1)
}

// reviewSchema constrains review output to {issues: ReviewIssue[]}.
var reviewSchema = &llm.Schema{
	Type:     llm.TypeObject,
	Order:    []string{"issues"},
	Required: []string{"issues"},
	Properties: map[string]*llm.Schema{
		"issues": {
			Type: llm.TypeArray,
			Items: &llm.Schema{
				Type:     llm.TypeObject,
				Order:    []string{"severity", "category", "message", "suggestion"},
				Required: []string{"severity", "category", "message", "suggestion"},
				Properties: map[string]*llm.Schema{
					"severity": {
						Type: llm.TypeString,
						Enum: []string{string(model.SeverityCritical), string(model.SeverityWarning), string(model.SeverityInfo)},
					},
					"category":   {Type: llm.TypeString, Description: "Brief category name, e.g. Security"},
					"message":    {Type: llm.TypeString, Description: "Clear description of the issue"},
					"suggestion": {Type: llm.TypeString, Description: "Specific recommendation to fix it"},
				},
			},
		},
	},
}
