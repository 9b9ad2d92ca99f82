package scene

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"penpal/internal/domain"
	"penpal/internal/keyboard"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Translation keys of the user profile scene
const (
	keyTellAboutYourself        = "tell_about_yourself"
	keyWait                     = "wait"
	keyTellAboutProjectKeyboard = "tell_about_project_keyboard"
	keyWhoIsMyReceiverKeyboard  = "who_is_my_receiver_keyboard"
	keyIdleKeyboard             = "idle_keyboard"
	keyInstructions             = "instructions"
	keyFinalInstruction         = "final_instruction"
	keyFinalInstructionKeyboard = "final_instruction_keyboard"
)

// Profiles gives scenes access to stored user profiles
type Profiles interface {
	GetProfile(userID int64) (*domain.User, error)
	RecordProgress(userID int64, scene domain.Scene) error
	Language(userID int64) (string, error)
}

// Translator resolves localized texts
type Translator interface {
	Text(lang, scene, key string) (string, error)
	Lines(lang, scene, key string) ([]string, error)
}

// dripStopTimeout bounds how long a restart waits for the previous drip
const dripStopTimeout = 5 * time.Second

// ProfileOptions tunes the timing of the profile scene
type ProfileOptions struct {
	Clock               clockwork.Clock
	InstructionInterval time.Duration
	DelayedMessageDelay time.Duration
}

// ProfileScene routes a user to bio collection or walks them through the instructions
type ProfileScene struct {
	profiles   Profiles
	translator Translator
	clock      clockwork.Clock
	interval   time.Duration
	delay      time.Duration
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	drips    map[int64]*Drip
	dripsMux sync.Mutex

	delayed    map[*delayedMessage]struct{}
	delayedMux sync.Mutex
}

type delayedMessage struct {
	timer clockwork.Timer
}

// NewProfileScene creates the user profile scene
func NewProfileScene(profiles Profiles, translator Translator, opts ProfileOptions, logger *zap.Logger) *ProfileScene {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.InstructionInterval <= 0 {
		opts.InstructionInterval = 2 * time.Second
	}
	if opts.DelayedMessageDelay <= 0 {
		opts.DelayedMessageDelay = 2 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ProfileScene{
		profiles:   profiles,
		translator: translator,
		clock:      opts.Clock,
		interval:   opts.InstructionInterval,
		delay:      opts.DelayedMessageDelay,
		logger:     logger.With(zap.String("scene", string(domain.SceneUserProfile))),
		ctx:        ctx,
		cancel:     cancel,
		drips:      make(map[int64]*Drip),
		delayed:    make(map[*delayedMessage]struct{}),
	}
}

// Name implements Scene
func (s *ProfileScene) Name() domain.Scene {
	return domain.SceneUserProfile
}

// Enter loads the profile, records the checkpoint and either starts the
// instructions or hands the user over to bio collection
func (s *ProfileScene) Enter(conv Conversation) error {
	userID := conv.UserID()

	user, err := s.profiles.GetProfile(userID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if err := s.profiles.RecordProgress(userID, domain.SceneUserProfile); err != nil {
		return err
	}

	s.logger.Info("Entered scene", zap.Int64("user_id", userID))

	if user.HasBio() {
		_, err := s.RunInstructions(conv)
		return err
	}

	return conv.Enter(domain.SceneBio)
}

// HandleText reacts to the reply keyboard buttons of this scene
func (s *ProfileScene) HandleText(conv Conversation, text string) error {
	lang, err := s.profiles.Language(conv.UserID())
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}

	for _, key := range []string{keyFinalInstructionKeyboard, keyWhoIsMyReceiverKeyboard} {
		label, err := s.text(lang, key)
		if err != nil {
			return err
		}
		if text == label {
			return s.PromptWaitForReceiver(conv)
		}
	}

	s.logger.Debug("Ignoring text",
		zap.Int64("user_id", conv.UserID()),
		zap.String("text", text),
	)
	return nil
}

// PromptForBio asks the user to tell about themselves
func (s *ProfileScene) PromptForBio(conv Conversation) error {
	lang, err := s.profiles.Language(conv.UserID())
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}

	text, err := s.text(lang, keyTellAboutYourself)
	if err != nil {
		return err
	}

	return conv.Reply(text, nil)
}

// PromptWaitForReceiver asks the user to wait and offers the waiting keyboard
func (s *ProfileScene) PromptWaitForReceiver(conv Conversation) error {
	lang, err := s.profiles.Language(conv.UserID())
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}

	texts, err := s.texts(lang, keyWait, keyTellAboutProjectKeyboard, keyWhoIsMyReceiverKeyboard, keyIdleKeyboard)
	if err != nil {
		return err
	}

	return conv.Reply(texts[0], keyboard.Wait(texts[1], texts[2], texts[3]))
}

// RunInstructions sends the first instruction right away and the rest one per
// interval, followed by the final instruction with its action keyboard.
// A previous drip of the same user is stopped.
func (s *ProfileScene) RunInstructions(conv Conversation) (*Drip, error) {
	userID := conv.UserID()

	lang, err := s.profiles.Language(userID)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	lines, err := s.translator.Lines(lang, string(domain.SceneUserProfile), keyInstructions)
	if err != nil {
		return nil, err
	}

	s.stopDrip(userID)

	if len(lines) > 0 {
		if err := conv.Reply(lines[0], nil); err != nil {
			return nil, fmt.Errorf("send instruction 0: %w", err)
		}
	}

	cursor := newInstructionCursor(len(lines))
	if cursor.Done() {
		return finishedDrip(), s.sendFinalInstruction(conv, lang)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	d := newDrip(cancel)
	ticker := s.clock.NewTicker(s.interval)

	s.trackDrip(userID, d)
	s.wg.Add(1)
	go s.drip(ctx, d, conv, lang, lines, cursor, ticker)

	return d, nil
}

func (s *ProfileScene) drip(
	ctx context.Context,
	d *Drip,
	conv Conversation,
	lang string,
	lines []string,
	cursor *instructionCursor,
	ticker clockwork.Ticker,
) {
	userID := conv.UserID()

	defer s.wg.Done()
	defer close(d.done)
	defer ticker.Stop()
	defer s.untrackDrip(userID, d)

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Instruction drip stopped", zap.Int64("user_id", userID))
			return

		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}

			index, last := cursor.Advance()

			if err := conv.Reply(lines[index], nil); err != nil {
				s.logger.Error("Failed to send instruction",
					zap.Error(err),
					zap.Int64("user_id", userID),
					zap.Int("index", index),
				)
				if errors.Is(err, tele.ErrBlockedByUser) {
					return
				}
			}

			if last {
				if err := s.sendFinalInstruction(conv, lang); err != nil {
					s.logger.Error("Failed to send final instruction",
						zap.Error(err),
						zap.Int64("user_id", userID),
					)
				}
				return
			}
		}
	}
}

func (s *ProfileScene) sendFinalInstruction(conv Conversation, lang string) error {
	texts, err := s.texts(lang, keyFinalInstruction, keyFinalInstructionKeyboard)
	if err != nil {
		return err
	}
	return conv.Reply(texts[0], keyboard.Instructions(texts[1]))
}

// SendDelayed sends a message once the delay has passed. Nobody waits for the
// result, a failed send is only logged. Messages still pending on Stop are dropped.
func (s *ProfileScene) SendDelayed(conv Conversation, message string) {
	s.delayedMux.Lock()
	defer s.delayedMux.Unlock()

	if s.ctx.Err() != nil {
		return
	}

	pending := &delayedMessage{}
	s.wg.Add(1)
	pending.timer = s.clock.AfterFunc(s.delay, func() {
		defer s.wg.Done()

		s.delayedMux.Lock()
		delete(s.delayed, pending)
		s.delayedMux.Unlock()

		if s.ctx.Err() != nil {
			return
		}

		if err := conv.Reply(message, nil); err != nil {
			s.logger.Error("Failed to send delayed message",
				zap.Error(err),
				zap.Int64("user_id", conv.UserID()),
			)
		}
	})
	s.delayed[pending] = struct{}{}
}

// Stop cancels every running drip and pending delayed message and waits for them to finish
func (s *ProfileScene) Stop() {
	s.cancel()

	s.delayedMux.Lock()
	for pending := range s.delayed {
		if pending.timer.Stop() {
			s.wg.Done()
		}
		delete(s.delayed, pending)
	}
	s.delayedMux.Unlock()

	s.wg.Wait()
}

func (s *ProfileScene) trackDrip(userID int64, d *Drip) {
	s.dripsMux.Lock()
	prev := s.drips[userID]
	s.drips[userID] = d
	s.dripsMux.Unlock()

	if prev != nil {
		prev.Stop()
	}
}

func (s *ProfileScene) untrackDrip(userID int64, d *Drip) {
	s.dripsMux.Lock()
	defer s.dripsMux.Unlock()

	if s.drips[userID] == d {
		delete(s.drips, userID)
	}
}

// stopDrip stops the user's drip and waits until an instruction it is
// sending has gone out
func (s *ProfileScene) stopDrip(userID int64) {
	s.dripsMux.Lock()
	prev := s.drips[userID]
	delete(s.drips, userID)
	s.dripsMux.Unlock()

	if prev == nil {
		return
	}
	prev.Stop()

	timer := time.NewTimer(dripStopTimeout)
	defer timer.Stop()

	select {
	case <-prev.Done():
	case <-timer.C:
		s.logger.Warn("Previous instruction drip did not stop in time", zap.Int64("user_id", userID))
	}
}

func (s *ProfileScene) text(lang, key string) (string, error) {
	return s.translator.Text(lang, string(domain.SceneUserProfile), key)
}

func (s *ProfileScene) texts(lang string, keys ...string) ([]string, error) {
	out := make([]string, len(keys))
	for i, key := range keys {
		text, err := s.text(lang, key)
		if err != nil {
			return nil, err
		}
		out[i] = text
	}
	return out, nil
}
