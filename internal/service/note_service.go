// FILE: internal/service/note_service.go
package service

import (
	"context"
	"errors"

	"saas-notes-be/internal/dto"
	"saas-notes-be/internal/mapper"
	"saas-notes-be/internal/pkg/apperror"
	"saas-notes-be/internal/pkg/logger"
	"saas-notes-be/internal/repository/contract"
	"saas-notes-be/pkg/events"
)

type INoteService interface {
	List(ctx context.Context, sessionID string) (*dto.ListNotesResponse, error)
	Show(ctx context.Context, sessionID string, id string) (*dto.NoteResponse, error)
	Create(ctx context.Context, sessionID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, sessionID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, sessionID string, id string) error
}

type noteService struct {
	sessions           contract.SessionRepository
	publisher          IPublisherService
	logger             logger.ILogger
	noteMapper         *mapper.NoteMapper
	subscriptionMapper *mapper.SubscriptionMapper
}

func NewNoteService(
	sessions contract.SessionRepository,
	publisher IPublisherService,
	logger logger.ILogger,
) INoteService {
	return &noteService{
		sessions:           sessions,
		publisher:          publisher,
		logger:             logger,
		noteMapper:         mapper.NewNoteMapper(),
		subscriptionMapper: mapper.NewSubscriptionMapper(),
	}
}

func (c *noteService) List(ctx context.Context, sessionID string) (*dto.ListNotesResponse, error) {
	st, err := lookupSession(c.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	snap := st.Snapshot()
	if !snap.LoggedIn() {
		return nil, apperror.Auth("not logged in")
	}

	return &dto.ListNotesResponse{
		Notes: c.noteMapper.ToResponses(snap.Notes),
		Usage: c.subscriptionMapper.ToUsage(snap.Subscription, snap.Gate),
	}, nil
}

func (c *noteService) Show(ctx context.Context, sessionID string, id string) (*dto.NoteResponse, error) {
	st, err := lookupSession(c.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	note, err := st.Note(id)
	if err != nil {
		return nil, err
	}

	res := c.noteMapper.ToResponse(note)
	return &res, nil
}

func (c *noteService) Create(ctx context.Context, sessionID string, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	st, err := lookupSession(c.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	note, err := st.CreateNote(req.Title, req.Content)
	if err != nil {
		if errors.Is(err, apperror.ErrLimit) {
			sub := st.Subscription()
			publishQuietly(ctx, c.publisher, c.logger, events.New(events.TypeNoteLimitReached, map[string]interface{}{
				"session_id": sessionID,
				"used":       sub.NotesUsed,
				"limit":      sub.Limit(),
			}))
		}
		return nil, err
	}

	publishQuietly(ctx, c.publisher, c.logger, events.New(events.TypeNoteCreated, map[string]interface{}{
		"session_id": sessionID,
		"note_id":    note.Id,
		"title":      note.Title,
	}))

	res := c.noteMapper.ToResponse(note)
	return &res, nil
}

func (c *noteService) Update(ctx context.Context, sessionID string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	st, err := lookupSession(c.sessions, sessionID)
	if err != nil {
		return nil, err
	}

	note, err := st.UpdateNote(req.Id, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	publishQuietly(ctx, c.publisher, c.logger, events.New(events.TypeNoteUpdated, map[string]interface{}{
		"session_id": sessionID,
		"note_id":    note.Id,
	}))

	res := c.noteMapper.ToResponse(note)
	return &res, nil
}

// Delete never reports a missing note.
func (c *noteService) Delete(ctx context.Context, sessionID string, id string) error {
	st, err := lookupSession(c.sessions, sessionID)
	if err != nil {
		return err
	}

	if err := st.DeleteNote(id); err != nil {
		return err
	}

	publishQuietly(ctx, c.publisher, c.logger, events.New(events.TypeNoteDeleted, map[string]interface{}{
		"session_id": sessionID,
		"note_id":    id,
	}))
	return nil
}
