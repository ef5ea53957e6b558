package todo

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type fakeTodoGateway struct {
	todos  map[uint]*entity.Todo
	nextID uint

	lastTagNames    []string
	lastReplaceTags bool
	overdueCount    int64
}

func newFakeTodoGateway() *fakeTodoGateway {
	return &fakeTodoGateway{todos: make(map[uint]*entity.Todo), nextID: 1}
}

func (g *fakeTodoGateway) FindAllByUser(userID uint) ([]entity.Todo, error) {
	var result []entity.Todo
	for _, todo := range g.todos {
		if todo.UserID == userID {
			result = append(result, *todo)
		}
	}
	return result, nil
}

func (g *fakeTodoGateway) FindByIDAndUser(id uint, userID uint) (*entity.Todo, error) {
	todo, exists := g.todos[id]
	if !exists || todo.UserID != userID {
		return nil, nil
	}
	copied := *todo
	return &copied, nil
}

func (g *fakeTodoGateway) Create(todo *entity.Todo, tagNames []string) error {
	todo.ID = g.nextID
	todo.CreatedAt = time.Now()
	g.nextID++
	g.lastTagNames = tagNames

	todo.Tags = make([]entity.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		todo.Tags = append(todo.Tags, entity.Tag{UserID: todo.UserID, Name: name})
	}

	stored := *todo
	g.todos[todo.ID] = &stored
	return nil
}

func (g *fakeTodoGateway) Update(todo *entity.Todo, tagNames []string, replaceTags bool) error {
	stored, exists := g.todos[todo.ID]
	if !exists {
		return errors.New("update on missing todo")
	}

	g.lastTagNames = tagNames
	g.lastReplaceTags = replaceTags

	// Mimic the real gateway: created_at and user_id stay untouched.
	todo.CreatedAt = stored.CreatedAt
	todo.UserID = stored.UserID

	if replaceTags {
		todo.Tags = make([]entity.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			todo.Tags = append(todo.Tags, entity.Tag{UserID: todo.UserID, Name: name})
		}
	} else {
		todo.Tags = stored.Tags
	}

	updated := *todo
	g.todos[todo.ID] = &updated
	return nil
}

func (g *fakeTodoGateway) DeleteByIDAndUser(id uint, userID uint) (bool, error) {
	todo, exists := g.todos[id]
	if !exists || todo.UserID != userID {
		return false, nil
	}
	delete(g.todos, id)
	return true, nil
}

func (g *fakeTodoGateway) MarkOverdue(now time.Time) (int64, error) {
	return g.overdueCount, nil
}

type recordingEventGateway struct {
	events []model.TodoEventType
}

func (g *recordingEventGateway) Publish(eventType model.TodoEventType, todo *entity.Todo) {
	g.events = append(g.events, eventType)
}

func newTestUseCase() (UseCase, *fakeTodoGateway, *recordingEventGateway) {
	gateway := newFakeTodoGateway()
	events := &recordingEventGateway{}
	return NewTodoUseCase(gateway, events, nil), gateway, events
}

func dueIn(d time.Duration) *model.DateTime {
	return model.NewDateTime(time.Now().Add(d))
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateDefaultsStatusToOpen(t *testing.T) {
	useCase, _, events := newTestUseCase()

	todo, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusOpen, todo.Status)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, uint(1), todo.UserID)
	assert.NotZero(t, todo.ID)
	assert.Equal(t, []model.TodoEventType{model.TodoCreated}, events.events)
}

func TestCreateTrimsTitle(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	todo, err := useCase.Create(1, model.CreateTodoDTO{Title: "  Buy milk  "})

	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Title)
}

func TestCreateRequiresTitle(t *testing.T) {
	useCase, _, events := newTestUseCase()

	for _, title := range []string{"", "   "} {
		_, err := useCase.Create(1, model.CreateTodoDTO{Title: title})

		var errs model.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs, "title")
	}
	assert.Empty(t, events.events)
}

func TestCreateRejectsLongFields(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	longTitle := make([]byte, 101)
	longDescription := make([]byte, 1001)
	for i := range longTitle {
		longTitle[i] = 'a'
	}
	for i := range longDescription {
		longDescription[i] = 'b'
	}

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title:       string(longTitle),
		Description: string(longDescription),
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
}

func TestCreateAcceptsBoundaryLengths(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	title := make([]byte, 100)
	description := make([]byte, 1000)
	for i := range title {
		title[i] = 'a'
	}
	for i := range description {
		description[i] = 'b'
	}

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title:       string(title),
		Description: string(description),
	})

	require.NoError(t, err)
}

func TestCreateRejectsPastDueDate(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title:   "Buy milk",
		DueDate: dueIn(-time.Hour),
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "due_date")
}

func TestCreateAcceptsFutureDueDate(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	todo, err := useCase.Create(1, model.CreateTodoDTO{
		Title:   "Buy milk",
		DueDate: dueIn(time.Hour),
	})

	require.NoError(t, err)
	require.NotNil(t, todo.DueDate)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk", Status: "DONE"})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "status")
}

func TestCreateAcceptsExplicitStatus(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	todo, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk", Status: "WORKING"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusWorking, todo.Status)
}

func TestCreateNormalizesTags(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	todo, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "  Work "}, {Name: "URGENT"}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"work", "urgent"}, gateway.lastTagNames)
	require.Len(t, todo.Tags, 2)
}

func TestCreateRejectsCaseInsensitiveDuplicateTags(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "Personal"}, {Name: "personal"}},
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "tags")
}

func TestCreateRejectsBlankTag(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "work"}, {Name: "   "}},
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "tags")
}

func TestCreateRejectsMoreThanFiveTags(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags: []model.TagRef{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
			{Name: "d"}, {Name: "e"}, {Name: "f"},
		},
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "tags")
}

func TestCreateAcceptsExactlyFiveTags(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags: []model.TagRef{
			{Name: "a"}, {Name: "b"}, {Name: "c"},
			{Name: "d"}, {Name: "e"},
		},
	})

	require.NoError(t, err)
}

func TestCreateCollectsAllValidationErrors(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title:   "",
		Status:  "DONE",
		DueDate: dueIn(-time.Hour),
		Tags:    []model.TagRef{{Name: "x"}, {Name: "X"}},
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "due_date")
	assert.Contains(t, errs, "tags")
}

func TestFindByIDAndUserScopesByOwner(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = useCase.FindByIDAndUser(created.ID, 2)
	assert.ErrorIs(t, err, model.ErrNotFound)

	found, err := useCase.FindByIDAndUser(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestFindAllByUserEmptyListMarshalsAsArray(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	todos, err := useCase.FindAllByUser(1)
	require.NoError(t, err)
	require.NotNil(t, todos)

	body, err := json.Marshal(todos)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestCreateRejectsOverlongTagName(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: string(long)}},
	})

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "tags")
}

func TestCreateAcceptsTagNameAtBoundary(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	boundary := make([]byte, 50)
	for i := range boundary {
		boundary[i] = 'a'
	}

	_, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: string(boundary)}},
	})

	require.NoError(t, err)
	require.Len(t, gateway.lastTagNames, 1)
}

func TestFindAllByUserReturnsOnlyOwnTodos(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	_, err := useCase.Create(1, model.CreateTodoDTO{Title: "Mine"})
	require.NoError(t, err)
	_, err = useCase.Create(2, model.CreateTodoDTO{Title: "Theirs"})
	require.NoError(t, err)

	todos, err := useCase.FindAllByUser(1)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Mine", todos[0].Title)
}

func TestUpdateFullRequiresTitle(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Description: stringPtr("updated"),
	}, false)

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
}

func TestUpdatePartialLeavesOmittedFieldsUntouched(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{
		Title:       "Buy milk",
		Description: "from the corner store",
		Status:      "WORKING",
	})
	require.NoError(t, err)

	updated, err := useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Title: stringPtr("Buy oat milk"),
	}, true)

	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "from the corner store", updated.Description)
	assert.Equal(t, entity.StatusWorking, updated.Status)
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)
	originalCreatedAt := gateway.todos[created.ID].CreatedAt

	updated, err := useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Title: stringPtr("Buy oat milk"),
	}, true)

	require.NoError(t, err)
	assert.Equal(t, originalCreatedAt, updated.CreatedAt)
}

func TestUpdateForeignTodoNotFound(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = useCase.Update(created.ID, 2, model.UpdateTodoDTO{
		Title: stringPtr("Hijack"),
	}, true)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateOmittedTagsLeaveSetUntouched(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "errand"}},
	})
	require.NoError(t, err)

	updated, err := useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Title: stringPtr("Buy oat milk"),
	}, true)

	require.NoError(t, err)
	assert.False(t, gateway.lastReplaceTags)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "errand", updated.Tags[0].Name)
}

func TestUpdateEmptyTagListClearsTags(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "errand"}},
	})
	require.NoError(t, err)

	empty := []model.TagRef{}
	updated, err := useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Title: stringPtr("Buy milk"),
		Tags:  &empty,
	}, true)

	require.NoError(t, err)
	assert.True(t, gateway.lastReplaceTags)
	assert.Empty(t, updated.Tags)
}

func TestUpdateReplacesTagSet(t *testing.T) {
	useCase, gateway, events := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{
		Title: "Buy milk",
		Tags:  []model.TagRef{{Name: "errand"}, {Name: "home"}},
	})
	require.NoError(t, err)

	replacement := []model.TagRef{{Name: "Urgent"}}
	updated, err := useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Tags: &replacement,
	}, true)

	require.NoError(t, err)
	assert.True(t, gateway.lastReplaceTags)
	assert.Equal(t, []string{"urgent"}, gateway.lastTagNames)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "urgent", updated.Tags[0].Name)
	assert.Equal(t, []model.TodoEventType{model.TodoCreated, model.TodoUpdated}, events.events)
}

func TestUpdateRejectsInvalidTagsWithoutPersisting(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)

	bad := []model.TagRef{{Name: "Home"}, {Name: "home"}}
	_, err = useCase.Update(created.ID, 1, model.UpdateTodoDTO{
		Title: stringPtr("Changed"),
		Tags:  &bad,
	}, true)

	var errs model.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "tags")
	assert.Equal(t, "Buy milk", gateway.todos[created.ID].Title)
}

func TestDeleteScopesByOwner(t *testing.T) {
	useCase, gateway, events := newTestUseCase()

	created, err := useCase.Create(1, model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)

	err = useCase.Delete(created.ID, 2)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, gateway.todos, created.ID)

	err = useCase.Delete(created.ID, 1)
	require.NoError(t, err)
	assert.NotContains(t, gateway.todos, created.ID)
	assert.Equal(t, []model.TodoEventType{model.TodoCreated, model.TodoDeleted}, events.events)
}

func TestDeleteMissingTodoNotFound(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	err := useCase.Delete(42, 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestMarkOverdueReportsUpdatedCount(t *testing.T) {
	useCase, gateway, _ := newTestUseCase()
	gateway.overdueCount = 3

	updated, err := useCase.MarkOverdue()
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
