package dto

// CreateQuestionRequest carries the payload of POST /questions. Fields are
// pointers so a missing field is distinguishable from a zero value; the service
// rejects absent fields as unprocessable rather than persisting blanks.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *uint   `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// SearchQuestionsRequest carries the payload of POST /questions/search.
// An absent or empty term matches every question.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// CreateCategoryRequest carries the payload of POST /categories.
type CreateCategoryRequest struct {
	Type *string `json:"type"`
}

// QuizCategory is the category descriptor of a quiz round. Type "click" is the
// sentinel meaning "all categories"; otherwise ID selects a single category.
type QuizCategory struct {
	ID   *uint   `json:"id"`
	Type *string `json:"type"`
}

// QuizRequest carries the payload of POST /quizzes. Both fields are required;
// previous_questions may be empty but must be present.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []uint        `json:"previous_questions"`
}
