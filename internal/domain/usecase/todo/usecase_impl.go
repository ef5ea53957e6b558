package todo

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/redis"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
	maxTagsPerTodo       = 5
	maxTagNameLength     = 50
)

type todoUseCase struct {
	gateway db.TodoGateway
	events  queue.TodoEventGateway
	cache   *redis.Cache
}

// NewTodoUseCase creates the todo usecase. cache may be nil when no Redis
// instance is configured; listing then always hits the database.
func NewTodoUseCase(gateway db.TodoGateway, events queue.TodoEventGateway, cache *redis.Cache) UseCase {
	return &todoUseCase{
		gateway: gateway,
		events:  events,
		cache:   cache,
	}
}

func (uc *todoUseCase) FindAllByUser(userID uint) ([]entity.Todo, error) {
	cacheKey := strconv.FormatUint(uint64(userID), 10)

	if uc.cache != nil {
		var cached []entity.Todo
		err := uc.cache.Get(context.Background(), cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Warnf("Todo list cache read failed: %v", err)
		}
	}

	todos, err := uc.gateway.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	for i := range todos {
		if todos[i].Tags == nil {
			todos[i].Tags = []entity.Tag{}
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(context.Background(), cacheKey, todos); err != nil {
			log.Warnf("Todo list cache write failed: %v", err)
		}
	}

	return todos, nil
}

func (uc *todoUseCase) FindByIDAndUser(id uint, userID uint) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.ErrNotFound
	}
	if todo.Tags == nil {
		todo.Tags = []entity.Tag{}
	}
	return todo, nil
}

func (uc *todoUseCase) Create(userID uint, dto model.CreateTodoDTO) (*entity.Todo, error) {
	errs := model.ValidationErrors{}

	title := strings.TrimSpace(dto.Title)
	validateTitle(title, errs)
	validateDescription(dto.Description, errs)

	status := entity.StatusOpen
	if dto.Status != "" {
		status = entity.TodoStatus(dto.Status)
		validateStatus(status, errs)
	}

	validateDueDate(dto.DueDate, errs)
	tagNames := normalizeTagNames(dto.Tags, errs)

	if errs.HasErrors() {
		return nil, errs
	}

	todo := &entity.Todo{
		UserID:      userID,
		Title:       title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		Status:      status,
	}

	if err := uc.gateway.Create(todo, tagNames); err != nil {
		return nil, err
	}

	uc.events.Publish(model.TodoCreated, todo)
	uc.invalidateList(userID)
	return todo, nil
}

func (uc *todoUseCase) Update(id uint, userID uint, dto model.UpdateTodoDTO, partial bool) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, model.ErrNotFound
	}

	errs := model.ValidationErrors{}

	if dto.Title != nil {
		todo.Title = strings.TrimSpace(*dto.Title)
		validateTitle(todo.Title, errs)
	} else if !partial {
		errs.Add("title", msg.GetMessage("todo.error.field-required"))
	}

	if dto.Description != nil {
		todo.Description = *dto.Description
		validateDescription(todo.Description, errs)
	}

	if dto.Status != nil {
		todo.Status = entity.TodoStatus(*dto.Status)
		validateStatus(todo.Status, errs)
	}

	if dto.DueDate != nil {
		todo.DueDate = dto.DueDate
		validateDueDate(dto.DueDate, errs)
	}

	var tagNames []string
	replaceTags := dto.Tags != nil
	if replaceTags {
		tagNames = normalizeTagNames(*dto.Tags, errs)
	}

	if errs.HasErrors() {
		return nil, errs
	}

	if err := uc.gateway.Update(todo, tagNames, replaceTags); err != nil {
		return nil, err
	}
	if todo.Tags == nil {
		todo.Tags = []entity.Tag{}
	}

	uc.events.Publish(model.TodoUpdated, todo)
	uc.invalidateList(userID)
	return todo, nil
}

func (uc *todoUseCase) Delete(id uint, userID uint) error {
	deleted, err := uc.gateway.DeleteByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrNotFound
	}

	uc.events.Publish(model.TodoDeleted, &entity.Todo{ID: id, UserID: userID})
	uc.invalidateList(userID)
	return nil
}

func (uc *todoUseCase) MarkOverdue() (int64, error) {
	updated, err := uc.gateway.MarkOverdue(time.Now())
	if err != nil {
		return 0, err
	}

	if updated > 0 && uc.cache != nil {
		if err := uc.cache.Clear(context.Background(), "*"); err != nil {
			log.Warnf("Todo list cache clear failed: %v", err)
		}
	}
	return updated, nil
}

func (uc *todoUseCase) invalidateList(userID uint) {
	if uc.cache == nil {
		return
	}
	cacheKey := strconv.FormatUint(uint64(userID), 10)
	if err := uc.cache.Delete(context.Background(), cacheKey); err != nil {
		log.Warnf("Todo list cache invalidation failed: %v", err)
	}
}

func validateTitle(title string, errs model.ValidationErrors) {
	if title == "" {
		errs.Add("title", msg.GetMessage("todo.error.field-required"))
		return
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs.Add("title", msg.GetMessage("todo.error.max-length", maxTitleLength))
	}
}

func validateDescription(description string, errs model.ValidationErrors) {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		errs.Add("description", msg.GetMessage("todo.error.max-length", maxDescriptionLength))
	}
}

func validateStatus(status entity.TodoStatus, errs model.ValidationErrors) {
	if !status.IsValid() {
		errs.Add("status", msg.GetMessage("todo.error.status-invalid", string(status)))
	}
}

func validateDueDate(dueDate *model.DateTime, errs model.ValidationErrors) {
	if dueDate != nil && dueDate.Before(time.Now()) {
		errs.Add("due_date", msg.GetMessage("todo.error.due-date-past"))
	}
}

// normalizeTagNames trims and lowercases the requested tag names and
// rejects the whole set on case-insensitive duplicates, blanks, overlong
// names, or more than five entries. The request-facing path never
// deduplicates silently.
func normalizeTagNames(refs []model.TagRef, errs model.ValidationErrors) []string {
	names := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	duplicated := false
	blank := false
	tooLong := false

	for _, ref := range refs {
		name := entity.NormalizeTagName(ref.Name)
		if name == "" {
			blank = true
			continue
		}
		if utf8.RuneCountInString(name) > maxTagNameLength {
			tooLong = true
			continue
		}
		if _, exists := seen[name]; exists {
			duplicated = true
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if blank {
		errs.Add("tags", msg.GetMessage("todo.error.tag-blank"))
	}
	if tooLong {
		errs.Add("tags", msg.GetMessage("todo.error.tag-max-length", maxTagNameLength))
	}
	if duplicated {
		errs.Add("tags", msg.GetMessage("todo.error.tags-not-unique"))
	}
	if len(refs) > maxTagsPerTodo {
		errs.Add("tags", msg.GetMessage("todo.error.tags-max", maxTagsPerTodo))
	}
	return names
}
