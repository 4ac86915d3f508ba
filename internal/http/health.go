package http

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicon/internal/dictionary"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}

type HealthResponse struct {
	Status  string                 `json:"status"`
	Time    string                 `json:"time"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]string      `json:"checks"`
	Cache   *dictionary.CacheStats `json:"cache,omitempty"`
}

type HealthController struct {
	words         WordService
	db            Pinger
	dictionaryDir string
	version       string
}

func NewHealthController(words WordService, db Pinger, dictionaryDir, version string) *HealthController {
	return &HealthController{
		words:         words,
		db:            db,
		dictionaryDir: dictionaryDir,
		version:       version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check the dictionary directory is readable
	if h.dictionaryDir != "" {
		info, err := os.Stat(h.dictionaryDir)
		switch {
		case err != nil:
			checks["dictionary"] = "error: dictionary directory unavailable"
			status = "unhealthy"
		case !info.IsDir():
			checks["dictionary"] = "error: dictionary path is not a directory"
			status = "unhealthy"
		default:
			checks["dictionary"] = "ok"
		}
	} else {
		checks["dictionary"] = "not configured"
	}

	// Check database connectivity
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	if h.words != nil {
		stats := h.words.Stats()
		health.Cache = &stats
		checks["languages"] = strconv.Itoa(len(h.words.Languages()))
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
