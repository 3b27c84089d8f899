package models

// TrendSummary is the LLM-produced trend digest of a submitted document.
type TrendSummary struct {
	Markdown  string `json:"markdown"`
	PlainText string `json:"plain_text"`
}

// QuestionAnswer is the LLM's answer to a user question, grounded in the
// submitted document.
type QuestionAnswer struct {
	Question  string `json:"question"`
	Markdown  string `json:"markdown"`
	PlainText string `json:"plain_text"`
}
