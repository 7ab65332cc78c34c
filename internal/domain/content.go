package domain

// Judge is a jury member shown on the public site.
type Judge struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

// FAQ is one public question/answer entry.
type FAQ struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

// AppSetting is a key/value switch such as registration_open.
type AppSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
