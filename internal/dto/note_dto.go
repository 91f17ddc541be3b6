package dto

import "time"

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	Id      string `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteResponse struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Edited    bool      `json:"edited"`
}

type ListNotesResponse struct {
	Notes []NoteResponse `json:"notes"`
	Usage UsageLimit     `json:"usage"`
}
