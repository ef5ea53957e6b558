package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
)

type fakeTagGateway struct {
	tags map[uint][]entity.Tag

	lastOffset int
	lastLimit  int
}

func (g *fakeTagGateway) FindAllByUser(userID uint, offset int, limit int) ([]entity.Tag, error) {
	g.lastOffset = offset
	g.lastLimit = limit

	tags := g.tags[userID]
	if offset >= len(tags) {
		return []entity.Tag{}, nil
	}
	end := offset + limit
	if end > len(tags) {
		end = len(tags)
	}
	return tags[offset:end], nil
}

func (g *fakeTagGateway) CountByUser(userID uint) (int64, error) {
	return int64(len(g.tags[userID])), nil
}

func TestFindAllByUserPagination(t *testing.T) {
	gateway := &fakeTagGateway{tags: map[uint][]entity.Tag{
		1: {
			{ID: 1, UserID: 1, Name: "errand"},
			{ID: 2, UserID: 1, Name: "home"},
			{ID: 3, UserID: 1, Name: "work"},
		},
	}}
	useCase := NewTagUseCase(gateway)

	page, err := useCase.FindAllByUser(1, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, gateway.lastOffset)
	assert.Equal(t, 2, gateway.lastLimit)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "work", page.Content[0].Name)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}

func TestFindAllByUserDefaultsPageAndSize(t *testing.T) {
	gateway := &fakeTagGateway{tags: map[uint][]entity.Tag{}}
	useCase := NewTagUseCase(gateway)

	_, err := useCase.FindAllByUser(1, -3, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, gateway.lastOffset)
	assert.Equal(t, 10, gateway.lastLimit)
}

func TestFindAllByUserScopesByOwner(t *testing.T) {
	gateway := &fakeTagGateway{tags: map[uint][]entity.Tag{
		1: {{ID: 1, UserID: 1, Name: "errand"}},
		2: {{ID: 2, UserID: 2, Name: "secret"}},
	}}
	useCase := NewTagUseCase(gateway)

	page, err := useCase.FindAllByUser(1, 0, 10)
	require.NoError(t, err)

	require.Len(t, page.Content, 1)
	assert.Equal(t, "errand", page.Content[0].Name)
}
