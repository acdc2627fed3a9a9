package api

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type habitInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Frequency   string `json:"frequency" form:"frequency"`
}
