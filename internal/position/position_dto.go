package position

type CreatePositionRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"required,min=1"`
}

type UpdatePositionRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"required,min=1"`
}

type PositionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}
