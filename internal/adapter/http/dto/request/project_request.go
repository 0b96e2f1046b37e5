package request

type UpdateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

type SetGithubURLRequest struct {
	GithubURL string `json:"github_url" binding:"required"`
}
