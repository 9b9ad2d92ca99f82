package domain

// Scene identifies one step of the conversation flow
type Scene string

const (
	SceneUserProfile Scene = "user_profile"
	SceneBio         Scene = "bio"
)

// Valid reports whether the scene is one the bot knows how to enter
func (s Scene) Valid() bool {
	switch s {
	case SceneUserProfile, SceneBio:
		return true
	}
	return false
}
