package response_models

type ChatResponse struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider"`
}
