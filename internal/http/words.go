package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/lexicon/internal/dictionary"
	"github.com/mrlokans/lexicon/internal/entities"
)

// WordService defines the lookup operations served over HTTP.
type WordService interface {
	GetRandomWord(ctx context.Context, length int, language, theme string) (entities.WordEntry, error)
	GetMeanings(ctx context.Context, word, language string) (entities.WordEntry, error)
	Languages() []dictionary.LanguageInfo
	Stats() dictionary.CacheStats
}

type WordsController struct {
	service WordService
}

func NewWordsController(service WordService) *WordsController {
	return &WordsController{service: service}
}

// RandomWordQuery holds the query parameters of GET /word.
type RandomWordQuery struct {
	Length   int    `form:"length,default=5" binding:"min=1"`
	Language string `form:"lang"`
	Theme    string `form:"theme"`
}

// MeaningsQuery holds the query parameters of GET /meanings.
type MeaningsQuery struct {
	Word     string `form:"word" binding:"required"`
	Language string `form:"lang"`
}

// LanguagesResponse lists the served languages.
type LanguagesResponse struct {
	Languages []dictionary.LanguageInfo `json:"languages"`
}

// RandomWord returns a random word of the requested length.
// GET /word?length=5&lang=en-us
func (wc *WordsController) RandomWord(c *gin.Context) {
	var query RandomWordQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := wc.service.GetRandomWord(c.Request.Context(), query.Length, query.Language, query.Theme)
	if err != nil {
		respondLookupError(c, err, "random word")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Meanings returns the definitions, synonyms and usages of a word.
// GET /meanings?word=apple&lang=en-us
func (wc *WordsController) Meanings(c *gin.Context) {
	var query MeaningsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := wc.service.GetMeanings(c.Request.Context(), query.Word, query.Language)
	if err != nil {
		respondLookupError(c, err, "meanings")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Languages describes the configured languages.
// GET /languages
func (wc *WordsController) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, LanguagesResponse{Languages: wc.service.Languages()})
}

// respondBindingError turns a query binding failure into a 400 response.
func respondBindingError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		respondBadRequest(c, "invalid query parameters")
		return
	}

	details := make(map[string]string, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		msg := describeFieldError(fe)
		details[field] = msg
		messages = append(messages, "invalid "+field+": "+msg)
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   strings.Join(messages, "; "),
		Code:    "validation_error",
		Details: details,
	})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
