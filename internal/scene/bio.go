package scene

import (
	"errors"
	"fmt"

	"penpal/internal/domain"
	"penpal/internal/service"

	"go.uber.org/zap"
)

const (
	keyEmptyBio = "empty_bio"
	keyBioSaved = "bio_saved"
)

// BioProfiles is the part of the user service the bio scene needs
type BioProfiles interface {
	RecordProgress(userID int64, scene domain.Scene) error
	Language(userID int64) (string, error)
	SaveBio(userID int64, bio string) error
}

// BioPrompter asks the user for a bio
type BioPrompter interface {
	PromptForBio(conv Conversation) error
}

// BioScene collects the user's bio and sends them back to the profile scene
type BioScene struct {
	profiles   BioProfiles
	prompter   BioPrompter
	translator Translator
	logger     *zap.Logger
}

// NewBioScene creates the bio collection scene
func NewBioScene(profiles BioProfiles, prompter BioPrompter, translator Translator, logger *zap.Logger) *BioScene {
	return &BioScene{
		profiles:   profiles,
		prompter:   prompter,
		translator: translator,
		logger:     logger.With(zap.String("scene", string(domain.SceneBio))),
	}
}

// Name implements Scene
func (s *BioScene) Name() domain.Scene {
	return domain.SceneBio
}

// Enter records the checkpoint and prompts for a bio
func (s *BioScene) Enter(conv Conversation) error {
	if err := s.profiles.RecordProgress(conv.UserID(), domain.SceneBio); err != nil {
		return err
	}

	s.logger.Info("Entered scene", zap.Int64("user_id", conv.UserID()))

	return s.prompter.PromptForBio(conv)
}

// HandleText stores the message as the user's bio
func (s *BioScene) HandleText(conv Conversation, text string) error {
	userID := conv.UserID()

	lang, err := s.profiles.Language(userID)
	if err != nil {
		return fmt.Errorf("get language: %w", err)
	}

	if err := s.profiles.SaveBio(userID, text); err != nil {
		if errors.Is(err, service.ErrEmptyBio) {
			return s.reply(conv, lang, keyEmptyBio)
		}
		return fmt.Errorf("save bio: %w", err)
	}

	s.logger.Info("Bio saved", zap.Int64("user_id", userID))

	if err := s.reply(conv, lang, keyBioSaved); err != nil {
		return err
	}

	return conv.Enter(domain.SceneUserProfile)
}

func (s *BioScene) reply(conv Conversation, lang, key string) error {
	text, err := s.translator.Text(lang, string(domain.SceneBio), key)
	if err != nil {
		return err
	}
	return conv.Reply(text, nil)
}
