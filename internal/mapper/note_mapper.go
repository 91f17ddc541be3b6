package mapper

import (
	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/entity"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToResponse(n entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Edited:    n.WasEdited(),
	}
}

func (m *NoteMapper) ToResponses(notes []entity.Note) []dto.NoteResponse {
	res := make([]dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = m.ToResponse(n)
	}
	return res
}
