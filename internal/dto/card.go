package dto

type CreateCardRequest struct {
	Label    string `json:"label" validate:"required,max=64"`
	LastFour string `json:"last_four" validate:"required,len=4,numeric"`
}

type CardResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	LastFour  string `json:"last_four"`
	CreatedAt string `json:"created_at"`
}
