package handler

import (
	"errors"
	"sync"

	"languager/internal/domain"
	"languager/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserKey is the context key the auth middleware stores the account under
const UserKey = "user"

const (
	audiosPageSize = 5
	wordsListLimit = 20
)

var errNoUser = errors.New("no user in bot context")

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	audioService *service.AudioService
	vocabService *service.VocabularyService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	audioService *service.AudioService,
	vocabService *service.VocabularyService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		audioService: audioService,
		vocabService: vocabService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/my_audios", h.handleMyAudios)
	h.bot.Handle(&btnMyAudios, h.handleMyAudios)
	h.bot.Handle("/delete_audio", h.handleDeleteAudio)
	h.bot.Handle("/add_word", h.handleAddWord)
	h.bot.Handle("/my_words", h.handleMyWords)
	h.bot.Handle("/cancel", h.handleCancel)

	// Media
	h.bot.Handle(tele.OnAudio, h.handleAudio)
	h.bot.Handle(tele.OnVoice, h.handleVoice)
	h.bot.Handle(tele.OnVideo, h.handleVideo)
	h.bot.Handle(tele.OnVideoNote, h.handleVideoNote)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// currentUser returns the account the auth middleware attached to c
func currentUser(c tele.Context) (*domain.User, error) {
	user, ok := c.Get(UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, errNoUser
	}
	return user, nil
}

var (
	btnMyAudios = tele.Btn{
		Text: "📜 My Audios",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(btnMyAudios))
	return menu
}

// cancelMarkup returns an inline keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
