package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"phrase-svc/app/dto"
	"phrase-svc/app/services"
	"phrase-svc/app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Client-facing messages
const (
	msgNoPhrasesToday = "No hay frases para hoy"
	msgTextRequired   = `Debes enviar "texto" no vacío`
	msgPhraseExists   = "La frase ya existe para ese día"
	msgDayNotFound    = "Día sin frases"
	msgInvalidIndex   = "Índice inválido"
	msgInvalidBody    = "Cuerpo de la solicitud inválido"
	msgStorageFailed  = "No se pudieron guardar las frases"
)

// PhraseHandler handles phrase endpoints
type PhraseHandler struct {
	phraseService *services.PhraseService
	logger        *zap.Logger
}

// NewPhraseHandler creates a new phrase handler
func NewPhraseHandler(phraseService *services.PhraseService, logger *zap.Logger) *PhraseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhraseHandler{
		phraseService: phraseService,
		logger:        logger,
	}
}

// Today handles GET /frase
func (h *PhraseHandler) Today(c *gin.Context) {
	day, phrase, err := h.phraseService.RandomForToday(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, dto.PhraseResponse{
		Dia:     day,
		Mensaje: phrase,
	})
}

// List handles GET /frases?day=
func (h *PhraseHandler) List(c *gin.Context) {
	var query dto.ListPhrasesQuery
	// A malformed query string still lists today's phrases
	_ = c.ShouldBindQuery(&query)

	day, phrases := h.phraseService.List(c.Request.Context(), query.Day)
	respondJSON(c, http.StatusOK, dto.ListPhrasesResponse{
		Dia:    day,
		Total:  len(phrases),
		Frases: phrases,
	})
}

// Add handles POST /frases
func (h *PhraseHandler) Add(c *gin.Context) {
	var req dto.AddPhraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, map[string]string{"error": err.Error()})
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgTextRequired, nil)
		return
	}

	day, total, err := h.phraseService.Add(c.Request.Context(), req.Texto, req.Day)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, dto.AddPhraseResponse{
		OK:    true,
		Dia:   day,
		Total: total,
	})
}

// Delete handles DELETE /frases/:day/:idx
func (h *PhraseHandler) Delete(c *gin.Context) {
	var uri dto.DeletePhraseURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidIndex, nil)
		return
	}

	// Unparseable indices are out of range; the day check still runs first.
	index, err := strconv.Atoi(uri.Index)
	if err != nil {
		index = -1
	}

	day, removed, total, err := h.phraseService.Delete(c.Request.Context(), uri.Day, index)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, dto.DeletePhraseResponse{
		OK:        true,
		Dia:       day,
		Eliminada: removed,
		Total:     total,
	})
}

func (h *PhraseHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoPhrasesToday):
		respondError(c, http.StatusNotFound, msgNoPhrasesToday, nil)
	case errors.Is(err, services.ErrTextRequired):
		respondError(c, http.StatusBadRequest, msgTextRequired, nil)
	case errors.Is(err, services.ErrPhraseExists):
		respondError(c, http.StatusConflict, msgPhraseExists, nil)
	case errors.Is(err, services.ErrDayNotFound):
		respondError(c, http.StatusNotFound, msgDayNotFound, nil)
	case errors.Is(err, services.ErrInvalidIndex):
		respondError(c, http.StatusBadRequest, msgInvalidIndex, nil)
	default:
		h.logger.Error("phrase operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, msgStorageFailed, nil)
	}
}
