package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/oakwoods/fighter/config"
)

// SavedScores represents the career win tallies stored on disk.
type SavedScores struct {
	WinsOne int `json:"winsOne"`
	WinsTwo int `json:"winsTwo"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fighter",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadScores loads the win tallies from disk. A missing file is not an
// error; it just means nobody has won yet.
func LoadScores() [cfg.PlayerCount]int {
	var scores [cfg.PlayerCount]int
	if !gdataInitialized || gdataManager == nil {
		return scores
	}

	data, err := gdataManager.LoadItem("scores")
	if err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		return scores
	}
	if data == nil {
		return scores
	}

	var saved SavedScores
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved scores: %v", err)
		return scores
	}

	scores[cfg.PlayerOne] = saved.WinsOne
	scores[cfg.PlayerTwo] = saved.WinsTwo
	return scores
}

// SaveScores saves the win tallies to disk.
func SaveScores(scores [cfg.PlayerCount]int) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedScores{
		WinsOne: scores[cfg.PlayerOne],
		WinsTwo: scores[cfg.PlayerTwo],
	})
	if err != nil {
		log.Printf("Warning: Could not serialize scores: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("scores", data); err != nil {
		log.Printf("Warning: Could not save scores: %v", err)
		return err
	}
	return nil
}
