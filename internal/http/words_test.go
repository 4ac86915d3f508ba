package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexicon/internal/dictionary"
	"github.com/mrlokans/lexicon/internal/entities"
)

type randomCall struct {
	length   int
	language string
	theme    string
}

type meaningsCall struct {
	word     string
	language string
}

type fakeWordService struct {
	entry     entities.WordEntry
	err       error
	languages []dictionary.LanguageInfo
	stats     dictionary.CacheStats

	randomCalls   []randomCall
	meaningsCalls []meaningsCall
}

func (f *fakeWordService) GetRandomWord(_ context.Context, length int, language, theme string) (entities.WordEntry, error) {
	f.randomCalls = append(f.randomCalls, randomCall{length, language, theme})
	return f.entry, f.err
}

func (f *fakeWordService) GetMeanings(_ context.Context, word, language string) (entities.WordEntry, error) {
	f.meaningsCalls = append(f.meaningsCalls, meaningsCall{word, language})
	return f.entry, f.err
}

func (f *fakeWordService) Languages() []dictionary.LanguageInfo {
	return f.languages
}

func (f *fakeWordService) Stats() dictionary.CacheStats {
	return f.stats
}

func setupWordsRouter(service WordService) *gin.Engine {
	controller := NewWordsController(service)
	router := gin.New()
	router.GET("/word", controller.RandomWord)
	router.GET("/meanings", controller.Meanings)
	router.GET("/languages", controller.Languages)
	return router
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestWordsController_RandomWord(t *testing.T) {
	t.Run("defaults length to five", func(t *testing.T) {
		svc := &fakeWordService{entry: entities.NewWordEntry("grape")}
		w := doGet(setupWordsRouter(svc), "/word")

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.randomCalls, 1)
		assert.Equal(t, randomCall{length: 5}, svc.randomCalls[0])

		var entry entities.WordEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "grape", entry.Word)
		assert.JSONEq(t, `{"word":"grape","definitions":[],"synonyms":[],"usages":[]}`, w.Body.String())
	})

	t.Run("passes length language and theme through", func(t *testing.T) {
		svc := &fakeWordService{entry: entities.NewWordEntry("casa")}
		w := doGet(setupWordsRouter(svc), "/word?length=4&lang=pt-br&theme=home")

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.randomCalls, 1)
		assert.Equal(t, randomCall{length: 4, language: "pt-br", theme: "home"}, svc.randomCalls[0])
	})

	t.Run("rejects non-numeric length", func(t *testing.T) {
		svc := &fakeWordService{}
		w := doGet(setupWordsRouter(svc), "/word?length=five")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid query parameters")
		assert.Empty(t, svc.randomCalls)
	})

	t.Run("rejects zero length before calling the service", func(t *testing.T) {
		svc := &fakeWordService{}
		w := doGet(setupWordsRouter(svc), "/word?length=0")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid length: must be at least 1", resp.Error)
		assert.Empty(t, svc.randomCalls)
	})

	t.Run("maps service validation error to 400", func(t *testing.T) {
		svc := &fakeWordService{err: dictionary.NewValidationError("length", "must be between 4 and 8 for en-us")}
		w := doGet(setupWordsRouter(svc), "/word?length=9")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must be between 4 and 8")
	})

	t.Run("maps empty partition to 404", func(t *testing.T) {
		svc := &fakeWordService{err: &dictionary.NotFoundError{What: "words of length 7 for en-us"}}
		w := doGet(setupWordsRouter(svc), "/word?length=7")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWordsController_Meanings(t *testing.T) {
	t.Run("returns entry", func(t *testing.T) {
		entry := entities.NewWordEntry("apple")
		entry.Definitions = []string{"a fruit"}
		svc := &fakeWordService{entry: entry}

		w := doGet(setupWordsRouter(svc), "/meanings?word=Apple&lang=en-us")

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.meaningsCalls, 1)
		assert.Equal(t, meaningsCall{word: "Apple", language: "en-us"}, svc.meaningsCalls[0])
		assert.JSONEq(t, `{"word":"apple","definitions":["a fruit"],"synonyms":[],"usages":[]}`, w.Body.String())
	})

	t.Run("requires word", func(t *testing.T) {
		svc := &fakeWordService{}
		w := doGet(setupWordsRouter(svc), "/meanings")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid word: is required", resp.Error)
		assert.Empty(t, svc.meaningsCalls)
	})

	t.Run("unknown word is 404", func(t *testing.T) {
		svc := &fakeWordService{err: &dictionary.NotFoundError{What: `word "zzzzzznotaword" in en-us`}}
		w := doGet(setupWordsRouter(svc), "/meanings?word=zzzzzznotaword")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "zzzzzznotaword")
	})

	t.Run("io failure is a generic 500", func(t *testing.T) {
		svc := &fakeWordService{err: &dictionary.IOError{Path: "/srv/dict/en-us/five.json", Err: assert.AnError}}
		w := doGet(setupWordsRouter(svc), "/meanings?word=apple")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestWordsController_Languages(t *testing.T) {
	svc := &fakeWordService{languages: []dictionary.LanguageInfo{
		{Code: "en-us", Layout: dictionary.LayoutFlat, MinLength: 4, MaxLength: 8, Meanings: true, Default: true},
		{Code: "pt-br", Layout: dictionary.LayoutSharded, MinLength: 3, MaxLength: 8, Meanings: true},
	}}

	w := doGet(setupWordsRouter(svc), "/languages")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LanguagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Languages, 2)
	assert.Equal(t, "en-us", resp.Languages[0].Code)
	assert.True(t, resp.Languages[0].Default)
	assert.Equal(t, 3, resp.Languages[1].MinLength)
}
