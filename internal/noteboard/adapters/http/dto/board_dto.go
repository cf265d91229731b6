package dto

import (
	"time"

	"noteboard/internal/noteboard/domain/entities"
)

// CreateBoardRequest содержит данные для создания доски.
type CreateBoardRequest struct {
	Name *string `json:"name"`
}

// UpdateBoardRequest содержит данные для частичного обновления доски.
type UpdateBoardRequest struct {
	Name *string `json:"name"`
}

// ToUpdate переводит запрос в доменное обновление.
func (r UpdateBoardRequest) ToUpdate() entities.BoardUpdate {
	return entities.BoardUpdate{Name: r.Name}
}

// Board представляет доску в ответе. Notes всегда сериализуется массивом.
type Board struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Notes     []*Note   `json:"notes"`
}

// BoardFromEntity строит ответ по доменной доске.
func BoardFromEntity(b *entities.Board) *Board {
	notes := make([]*Note, 0, len(b.Notes))
	for _, n := range b.Notes {
		notes = append(notes, NoteFromEntity(n))
	}
	return &Board{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Notes:     notes,
	}
}
