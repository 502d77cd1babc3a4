package scenes

// SceneChanger allows scenes to trigger transitions on the running game.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
