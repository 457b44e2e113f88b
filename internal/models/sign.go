package models

// SignCategory groups signs into a lesson
type SignCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"-"`
}

// Sign represents a single sign language entry in the catalog
type Sign struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	Word         string `json:"word"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"imageUrl"`
	VideoURL     string `json:"videoUrl"`
	Tag          string `json:"tag"`
	Difficulty   string `json:"difficulty"`
	Position     int    `json:"-"`
}
