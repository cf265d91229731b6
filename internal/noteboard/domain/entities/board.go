package entities

import (
	"time"
	"unicode/utf8"
)

// MaxBoardNameLength - максимальная длина названия доски в символах.
const MaxBoardNameLength = 75

// Board представляет доску. Notes вычисляется запросом по note.board_id и не хранится в строке доски.
type Board struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Notes     []*Note   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBoard создает доску без заметок.
func NewBoard(name string) (*Board, error) {
	if err := ValidateBoardName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Board{
		Name:      name,
		Notes:     []*Note{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateBoardName проверяет длину и допустимость символов названия доски.
func ValidateBoardName(name string) error {
	if !storable(name) {
		return ErrBoardNameInvalid
	}
	if utf8.RuneCountInString(name) > MaxBoardNameLength {
		return ErrBoardNameTooLong
	}
	return nil
}

// BoardUpdate - изменяемые поля доски.
type BoardUpdate struct {
	Name *string
}

// Validate проверяет переданные поля.
func (u BoardUpdate) Validate() error {
	if u.Name != nil {
		return ValidateBoardName(*u.Name)
	}
	return nil
}
