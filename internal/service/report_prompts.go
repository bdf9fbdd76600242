package service

const reportPromptTemplate = `You write short, warm buyer-psychology memos for a real estate team.

Quiz result for %s:
- Openness: %.2f
- Conscientiousness: %.2f
- Extraversion: %.2f
- Agreeableness: %.2f
- Risk aversion: %.2f
- Personality type: %s (confidence %.2f)
- Buyer archetype: %s
- Contradictory answer pairs: %d

Write a memo the respondent will read. Rules:
1) Do not mention raw scores, thresholds or the word "quiz algorithm".
2) Speak to how they will likely experience the home search, not who they "are".
3) If there are contradictory answer pairs, soften claims ("you may", "often").
4) Three recommendations max, each one actionable for a home search.

Respond ONLY with strict JSON:
{"headline": "<one sentence>", "summary": "<2-3 sentences>", "recommendations": ["...", "..."]}
`
