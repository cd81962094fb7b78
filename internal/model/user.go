package model

// User is an account allowed to call the API.
// Password holds the bcrypt hash, never the plain text.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	StatusIndex Role   `json:"status_index"`
	CreatedAt   string `json:"created_at"`
}
