package catalog

// seedCategories is the built-in CARS error taxonomy.
// 7 categories; five of them also carry common mistakes.
var seedCategories = []Category{
	{
		Name:     "Tone/Attitude",
		Keywords: []string{"tone", "attitude", "perspective", "viewpoint", "neutral", "negative"},
		Fix:      "Highlight adjectives/verbs that indicate tone. Practice identifying neutral vs. opinionated language.",
		Drill:    "Read a passage and highlight all tone words (e.g., 'criticizes', 'admires').",
		Mistakes: []string{"misidentifying neutral tone", "overlooking qualifying words"},
	},
	{
		Name:     "Context Misread",
		Keywords: []string{"context", "paragraph", "line", "section", "reread", "passage"},
		Fix:      "Before answering, summarize each paragraph in 5 words. Check question references (e.g., 'paragraph 3').",
		Drill:    "Find a passage with multiple viewpoints. Map which paragraphs support each view.",
		Mistakes: []string{"taking quotes out of context", "ignoring paragraph transitions"},
	},
	{
		Name:     "Overthinking",
		Keywords: []string{"assumed", "overthought", "bias", "should be", "reasoning"},
		Fix:      "Eliminate answers that require assumptions not in text. Stick to passage evidence only.",
		Drill:    "Do 5 questions where you must justify each answer with exact passage text.",
	},
	{
		Name:     "Detail Missed",
		Keywords: []string{"missed", "overlooked", "didn't notice", "not stated"},
		Fix:      "Circle key nouns/numbers when reading. Verify answer choices against specific passage lines.",
		Drill:    "Annotate a passage by underlining: dates, names, and specialized terms.",
		Mistakes: []string{"skimming complex sentences", "missing parenthetical details"},
	},
	{
		Name:     "Question Misinterpretation",
		Keywords: []string{"misunderstood", "misinterpreted", "question"},
		Fix:      "Restate the question in your own words before looking at answers.",
		Drill:    "Restate 3 hard questions in your own words before answering.",
	},
	{
		Name:     "Structure Error",
		Keywords: []string{"main idea", "first sentence", "paragraph structure"},
		Fix:      "Note the first/last sentences of paragraphs - they often contain main ideas.",
		Drill:    "Outline a passage's structure: main idea → evidence → conclusion.",
		Mistakes: []string{"confusing evidence for conclusion", "missing counterarguments"},
	},
	{
		Name:     "Vocabulary",
		Keywords: []string{"word", "term", "phrase", "meaning", "empirical"},
		Fix:      "Make flashcards for unfamiliar terms. Look for defining phrases like 'means' or 'refers to'.",
		Drill:    "Identify 5 unfamiliar words from passages and guess meanings from context.",
		Mistakes: []string{"assuming familiar definitions", "ignoring contextual clues"},
	},
}
