package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	Warning      string `json:"warning,omitempty"`
}

type ParseRequest struct {
	DocumentID  string `json:"document_id"`
	LinkedInURL string `json:"linkedin_url"`
}

type ParseResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID            string        `json:"id"`
	Status        string        `json:"status"`
	ParsingMethod string        `json:"parsing_method,omitempty"`
	Resume        *ResumeRecord `json:"resume,omitempty"`
	ErrorMessage  *string       `json:"error_message,omitempty"`
}
