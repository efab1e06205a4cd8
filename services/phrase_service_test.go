package services

import (
	"fmt"
	"testing"

	"phrasebingo/apperr"
	"phrasebingo/game"

	"github.com/stretchr/testify/assert"
)

func seedCategory(t *testing.T, svc *PhraseService, n int) uint {
	t.Helper()
	phrases := make([]string, n)
	for i := range phrases {
		phrases[i] = fmt.Sprintf("someone says buzzword %d", i)
	}
	category, err := svc.CreateCategory(1, &CreateCategoryRequest{
		Name:    "Meetings",
		Phrases: phrases,
	})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category.ID
}

func TestCreateCategoryWithPhrases(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))

	category, err := svc.CreateCategory(1, &CreateCategoryRequest{
		Name:        "Meetings",
		Description: "Things people say on calls",
		Phrases:     []string{"you're on mute", "can everyone see my screen"},
	})
	assert.NoError(err)

	got, err := svc.GetCategoryByID(1, category.ID)
	assert.NoError(err)
	assert.Len(got.Phrases, 2)
}

func TestAddPhrasesRejectsDuplicates(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))

	category, err := svc.CreateCategory(1, &CreateCategoryRequest{
		Name:    "Meetings",
		Phrases: []string{"you're on mute"},
	})
	assert.NoError(err)

	// Duplicate detection is by normalized key, not stored text.
	_, err = svc.AddPhrases(1, category.ID, &AddPhrasesRequest{
		Phrases: []string{"  You're ON   mute "},
	})
	assert.True(apperr.IsKind(err, apperr.KindConflict))

	_, err = svc.AddPhrases(1, category.ID, &AddPhrasesRequest{
		Phrases: []string{"hard stop at the hour"},
	})
	assert.NoError(err)
}

func TestAddPhrasesRejectsEmptyText(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))

	category, _ := svc.CreateCategory(1, &CreateCategoryRequest{Name: "Meetings"})

	_, err := svc.AddPhrases(1, category.ID, &AddPhrasesRequest{Phrases: []string{"   "}})

	assert.True(apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestCategoryOwnerScoping(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))

	category, _ := svc.CreateCategory(1, &CreateCategoryRequest{Name: "Meetings"})

	_, err := svc.GetCategoryByID(2, category.ID)
	assert.True(apperr.IsKind(err, apperr.KindNotFound))

	err = svc.DeleteCategory(2, category.ID)
	assert.True(apperr.IsKind(err, apperr.KindNotFound))
}

func TestBuildGrid(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))
	categoryID := seedCategory(t, svc, 30)

	rows, err := svc.BuildGrid(categoryID)
	assert.NoError(err)
	assert.Len(rows, game.Size)

	seen := make(map[string]bool)
	for r, row := range rows {
		assert.Len(row, game.Size)
		for c, cell := range row {
			if r == game.FreeRow && c == game.FreeCol {
				assert.Equal(FreeSpaceText, cell)
				continue
			}
			assert.NotEmpty(cell)
			assert.False(seen[cell], "phrase %q dealt twice", cell)
			seen[cell] = true
		}
	}
	assert.Len(seen, cardPhraseCount)
}

func TestBuildGridNeedsEnoughPhrases(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))
	categoryID := seedCategory(t, svc, 10)

	_, err := svc.BuildGrid(categoryID)

	assert.True(apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestDeletePhrase(t *testing.T) {
	assert := assert.New(t)
	svc := NewPhraseService(newTestDB(t))

	category, _ := svc.CreateCategory(1, &CreateCategoryRequest{
		Name:    "Meetings",
		Phrases: []string{"you're on mute"},
	})
	got, _ := svc.GetCategoryByID(1, category.ID)

	assert.NoError(svc.DeletePhrase(1, category.ID, got.Phrases[0].ID))
	assert.True(apperr.IsKind(svc.DeletePhrase(1, category.ID, got.Phrases[0].ID), apperr.KindNotFound))
}
