package dto

// QuestionResponse is the serialized form of a question everywhere it appears.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse is the serialized form of a category.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// CategoryListResponse is the body of GET /categories.
type CategoryListResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse is the body of GET /questions: one page of questions,
// the unpaginated total, and the full category map. current_category is always
// null on this endpoint.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
	Categories      map[uint]string    `json:"categories"`
}

// DeleteQuestionResponse is the body of DELETE /questions/{id}.
type DeleteQuestionResponse struct {
	Success        bool  `json:"success"`
	Deleted        uint  `json:"deleted"`
	TotalQuestions int64 `json:"total_questions"`
}

// CreateQuestionResponse is the body of POST /questions.
type CreateQuestionResponse struct {
	Success    bool             `json:"success"`
	Created    uint             `json:"created"`
	Question   QuestionResponse `json:"question"`
	Categories map[uint]string  `json:"categories"`
}

// SearchQuestionsResponse is the body of POST /questions/search. The total is
// the unpaginated match count; an empty page is a valid result here, not a 404.
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CategoryQuestionsResponse is the body of GET /categories/{id}/questions.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CreateCategoryResponse is the body of POST /categories.
type CreateCategoryResponse struct {
	Success    bool             `json:"success"`
	Created    uint             `json:"created"`
	Category   CategoryResponse `json:"category"`
	Categories map[uint]string  `json:"categories"`
}

// QuizResponse is the body of POST /quizzes. Question is null once every
// eligible question has been played; that is a success, not an error.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
