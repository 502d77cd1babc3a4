package config

// FrameRange is an inclusive range of sprite-sheet frame indices.
type FrameRange struct {
	First int
	Last  int
}

// FrameInterval is the number of ticks between animation frame advances
// (0.1 s at 60 TPS).
const FrameInterval = 6

// FighterAnimations maps each player's states to frame ranges in that
// player's sprite sheet. The sheets are laid out differently, so the two
// tables differ; every StateID has an entry for both players.
var FighterAnimations = [PlayerCount][StateCount]FrameRange{
	PlayerOne: {
		Attacking: {First: 0, Last: 5},
		Dying:     {First: 16, Last: 21},
		Falling:   {First: 24, Last: 25},
		Idling:    {First: 32, Last: 39},
		Jumping:   {First: 40, Last: 41},
		Running:   {First: 48, Last: 55},
		TakingHit: {First: 64, Last: 67},
	},
	PlayerTwo: {
		Attacking: {First: 0, Last: 3},
		Dying:     {First: 16, Last: 22},
		Falling:   {First: 24, Last: 25},
		Idling:    {First: 32, Last: 35},
		Jumping:   {First: 40, Last: 41},
		Running:   {First: 48, Last: 55},
		TakingHit: {First: 56, Last: 58},
	},
}
