package app

import (
	"context"
	"fmt"

	notesHTTP "github.com/allisson/binbot/internal/notes/http"
	notesRepository "github.com/allisson/binbot/internal/notes/repository"
	notesService "github.com/allisson/binbot/internal/notes/service"
	notesUseCase "github.com/allisson/binbot/internal/notes/usecase"
)

// NotesCipher returns the keeper that seals note content at rest.
func (c *Container) NotesCipher() (notesService.Cipher, error) {
	var err error
	c.notesCipherInit.Do(func() {
		c.notesCipher, err = notesService.OpenCipher(context.Background(), c.config.NotesKeyURI)
		if err != nil {
			c.setInitError("notesCipher", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("notesCipher"); storedErr != nil {
		return nil, storedErr
	}
	return c.notesCipher, nil
}

// NoteRepository returns the note repository for the configured driver.
func (c *Container) NoteRepository() (notesUseCase.NoteRepository, error) {
	var err error
	c.noteRepoInit.Do(func() {
		c.noteRepo, err = c.initNoteRepository()
		if err != nil {
			c.setInitError("noteRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("noteRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.noteRepo, nil
}

// NoteUseCase returns the note use case wrapped with business metrics.
func (c *Container) NoteUseCase() (notesUseCase.NoteUseCase, error) {
	var err error
	c.noteUseCaseInit.Do(func() {
		c.noteUseCase, err = c.initNoteUseCase()
		if err != nil {
			c.setInitError("noteUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("noteUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.noteUseCase, nil
}

// NoteHandler returns the notes HTTP handler.
func (c *Container) NoteHandler() (*notesHTTP.NoteHandler, error) {
	var err error
	c.noteHandlerInit.Do(func() {
		c.noteHandler, err = c.initNoteHandler()
		if err != nil {
			c.setInitError("noteHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("noteHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.noteHandler, nil
}

func (c *Container) initNoteRepository() (notesUseCase.NoteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for note repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return notesRepository.NewMySQLNoteRepository(db), nil
	case "postgres":
		return notesRepository.NewPostgreSQLNoteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initNoteUseCase() (notesUseCase.NoteUseCase, error) {
	repo, err := c.NoteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get note repository for note use case: %w", err)
	}

	cipher, err := c.NotesCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get notes cipher for note use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for note use case: %w", err)
	}

	useCase := notesUseCase.NewNoteUseCase(repo, cipher)
	return notesUseCase.NewNoteUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initNoteHandler() (*notesHTTP.NoteHandler, error) {
	useCase, err := c.NoteUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get note use case for note handler: %w", err)
	}
	return notesHTTP.NewNoteHandler(useCase, c.Logger()), nil
}
