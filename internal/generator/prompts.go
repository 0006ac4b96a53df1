package generator

import (
	"strings"
	"text/template"
)

var passageTmpl = template.Must(template.New("passage").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(
	`You are a witty and sharp med student who scored 132 on the MCAT CARS section.
You're helping a premed friend practice their weakest CARS skill: {{.Category}}.
{{- if .Mistakes}}
They tend to slip by {{join .Mistakes " and "}}; build the questions so those slips are tempting.
{{- end}}

Write a ~550-word AAMC-style passage followed by **3 multiple choice questions**:
- Q1: [MAIN IDEA] (easiest)
- Q2: [DETAIL/INFERENCE]
- Q3: [TONE/STRUCTURE] (hardest)

Passage rules:
- Use at least **3 direct quotes** ("...") like AAMC does
- No outside knowledge; base logic only on the passage
- Include transitional words like "however", "notably", etc.
- Topic should be challenging but interesting: philosophy, history, ethics, literature, sociology, etc.

Question formatting:
[MAIN IDEA]
What is the author's central argument?
A) ...
B) ...
C) ...
D) ...

Then include a section like this:

{{.Delimiter}}
**Question 1**
Correct Answer: B
- B is correct because "..." (Para 2)
- A is wrong because "..."
- C is flawed because "..."
- D contradicts "..."

**Question 2**
Correct Answer: C
...

**Question 3**
Correct Answer: D
...

Other instructions:
- Randomize the correct answer between A-D for each question
- Make distractors **plausible but wrong**
- Make explanations sound human, like a med student tutoring a friend
- No fluff. Be kind, clear, and quote the passage often
`))

var followupTmpl = template.Must(template.New("followup").Parse(
	`You are a friendly MCAT CARS tutor trained in AAMC logic.
Your student needs help with a question about a passage involving the skill: {{.Category}}.

Use quotes and paragraph references to explain things clearly and kindly.
Make it sound like you're explaining it to a smart premed friend, not a robot.
`))

type promptData struct {
	Category  string
	Mistakes  []string
	Delimiter string
}

func render(t *template.Template, data promptData) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// passageUserMessage is the user turn sent with a fresh-passage request.
func passageUserMessage(category string) string {
	return "Create a full CARS passage and 3 MCQs targeting: " + category
}
