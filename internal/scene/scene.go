// Package scene implements the steps of the onboarding conversation.
//
// A Scene reacts to being entered and to the text messages a user sends while
// in it. The Router remembers which scene every user is in and moves users
// between scenes.
package scene

import (
	"errors"
	"fmt"
	"sync"

	"penpal/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrUnknownScene is returned when entering a scene that was never registered
var ErrUnknownScene = errors.New("unknown scene")

// Conversation is what a scene can do with the chat of one user
type Conversation interface {
	UserID() int64
	Reply(text string, markup *tele.ReplyMarkup) error
	Enter(scene domain.Scene) error
}

// Scene is one step of the conversation flow
type Scene interface {
	Name() domain.Scene
	Enter(conv Conversation) error
	HandleText(conv Conversation, text string) error
}

// Router keeps the current scene of every user
type Router struct {
	scenes map[domain.Scene]Scene
	logger *zap.Logger

	current    map[int64]domain.Scene
	currentMux sync.RWMutex
}

// NewRouter creates a router over the given scenes
func NewRouter(logger *zap.Logger, scenes ...Scene) *Router {
	r := &Router{
		scenes:  make(map[domain.Scene]Scene, len(scenes)),
		logger:  logger,
		current: make(map[int64]domain.Scene),
	}
	for _, s := range scenes {
		r.scenes[s.Name()] = s
	}
	return r
}

// Enter moves the user into a scene and runs its entry logic.
// When the entry logic fails the user is left without a scene, unless the
// scene already moved them on.
func (r *Router) Enter(conv Conversation, name domain.Scene) error {
	s, ok := r.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	userID := conv.UserID()

	r.currentMux.Lock()
	r.current[userID] = name
	r.currentMux.Unlock()

	r.logger.Debug("Entering scene",
		zap.Int64("user_id", userID),
		zap.String("scene", string(name)),
	)

	if err := s.Enter(conv); err != nil {
		r.leave(userID, name)
		return err
	}
	return nil
}

// leave forgets the user's scene if it is still the given one
func (r *Router) leave(userID int64, name domain.Scene) {
	r.currentMux.Lock()
	defer r.currentMux.Unlock()

	if r.current[userID] == name {
		delete(r.current, userID)
	}
}

// Current returns the scene the user is in
func (r *Router) Current(userID int64) (domain.Scene, bool) {
	r.currentMux.RLock()
	defer r.currentMux.RUnlock()

	name, ok := r.current[userID]
	return name, ok
}

// HandleText passes a text message to the user's current scene.
// It reports false when the user is not in any scene.
func (r *Router) HandleText(conv Conversation, text string) (bool, error) {
	name, ok := r.Current(conv.UserID())
	if !ok {
		return false, nil
	}
	return true, r.scenes[name].HandleText(conv, text)
}
