package services

import (
	"errors"
	"math/rand"
	"strings"

	"phrasebingo/apperr"
	"phrasebingo/game"
	"phrasebingo/models"

	"gorm.io/gorm"
)

// FreeSpaceText is the label placed at the center of every generated card.
const FreeSpaceText = "FREE"

// cardPhraseCount is how many distinct phrases a category must hold to
// fill a 5x5 card around the FREE center.
const cardPhraseCount = game.Size*game.Size - 1

type PhraseService struct {
	db *gorm.DB
}

func NewPhraseService(db *gorm.DB) *PhraseService {
	return &PhraseService{db: db}
}

type CreateCategoryRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Phrases     []string `json:"phrases"`
}

type AddPhrasesRequest struct {
	Phrases []string `json:"phrases" binding:"required,min=1"`
}

// normalizePhrase produces the key used for duplicate detection: trimmed,
// lowercased, inner whitespace collapsed.
func normalizePhrase(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func (s *PhraseService) CreateCategory(userID uint, req *CreateCategoryRequest) (*models.Category, error) {
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		return insertPhrases(tx, &category, req.Phrases)
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *PhraseService) GetUserCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Preload("Phrases").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *PhraseService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).Preload("Phrases").First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("category %d not found", categoryID)
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// AddPhrases appends phrases to a category, rejecting duplicates against
// the stored set by normalized key.
func (s *PhraseService) AddPhrases(userID, categoryID uint, req *AddPhrasesRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return insertPhrases(tx, category, req.Phrases)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCategoryByID(userID, categoryID)
}

func insertPhrases(tx *gorm.DB, category *models.Category, texts []string) error {
	seen := make(map[string]bool)
	for i := range category.Phrases {
		seen[category.Phrases[i].NormalizedText] = true
	}

	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			return apperr.InvalidArgument("phrase text cannot be empty")
		}
		key := normalizePhrase(text)
		if seen[key] {
			return apperr.Conflict("phrase %q already exists in category %s", text, category.Name)
		}
		seen[key] = true

		phrase := models.Phrase{
			CategoryID:     category.ID,
			Text:           text,
			NormalizedText: key,
		}
		if err := tx.Create(&phrase).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *PhraseService) DeleteCategory(userID, categoryID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("category %d not found", categoryID)
	}
	return nil
}

func (s *PhraseService) DeletePhrase(userID, categoryID, phraseID uint) error {
	if _, err := s.GetCategoryByID(userID, categoryID); err != nil {
		return err
	}
	result := s.db.Where("id = ? AND category_id = ?", phraseID, categoryID).Delete(&models.Phrase{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("phrase %d not found", phraseID)
	}
	return nil
}

// BuildGrid samples 24 distinct phrases from the category into a 5x5 card
// with the FREE center. Each call shuffles independently, so every player
// gets their own arrangement.
func (s *PhraseService) BuildGrid(categoryID uint) ([][]string, error) {
	var phrases []models.Phrase
	if err := s.db.Where("category_id = ?", categoryID).Find(&phrases).Error; err != nil {
		return nil, err
	}
	if len(phrases) < cardPhraseCount {
		return nil, apperr.InvalidArgument("category %d has %d phrases, needs at least %d", categoryID, len(phrases), cardPhraseCount)
	}

	rand.Shuffle(len(phrases), func(i, j int) {
		phrases[i], phrases[j] = phrases[j], phrases[i]
	})

	rows := make([][]string, game.Size)
	idx := 0
	for r := 0; r < game.Size; r++ {
		rows[r] = make([]string, game.Size)
		for c := 0; c < game.Size; c++ {
			if r == game.FreeRow && c == game.FreeCol {
				rows[r][c] = FreeSpaceText
				continue
			}
			rows[r][c] = phrases[idx].Text
			idx++
		}
	}
	return rows, nil
}
