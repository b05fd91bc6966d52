package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin        = "join"
	MsgLeave       = "leave"
	MsgInput       = "input"
	MsgCreate      = "create" // create session
	MsgList        = "list"   // list sessions
	MsgCheck       = "check"  // check if session exists
	MsgRegister    = "register"
	MsgLogin       = "login"
	MsgAuth        = "auth" // token re-auth
	MsgProfile     = "profile"
	MsgLeaderboard = "leaderboard"
)

// Server -> Client message types
const (
	MsgState           = "state"
	MsgWelcome         = "welcome"
	MsgDeath           = "death"
	MsgWave            = "wave"
	MsgSessions        = "sessions"
	MsgJoined          = "joined"
	MsgCreated         = "created"
	MsgChecked         = "checked"
	MsgError           = "error"
	MsgAuthOK          = "auth_ok"
	MsgProfileData     = "profile_data"
	MsgLeaderboardData = "leaderboard_data"
)

// Envelope wraps all outgoing control messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is sent by the client at 20Hz
type ClientInput struct {
	MX     float64 `json:"mx"`     // pointer X (world coords)
	MY     float64 `json:"my"`     // pointer Y (world coords)
	Fire   bool    `json:"fire"`   // fire button held
	Boost  bool    `json:"boost"`  // boost button held
	Thresh float64 `json:"thresh"` // distance threshold for speed modulation
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
}

// PlayerState is broadcast per player each state tick
type PlayerState struct {
	ID    string  `json:"id" msgpack:"id"`
	Name  string  `json:"n" msgpack:"n"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"` // rotation radians
	VX    float64 `json:"vx" msgpack:"vx"`
	VY    float64 `json:"vy" msgpack:"vy"`
	HP    int     `json:"hp" msgpack:"hp"`
	MaxHP int     `json:"mhp" msgpack:"mhp"`
	Score int     `json:"sc" msgpack:"sc"`
	Kills int     `json:"k" msgpack:"k"`
	Alive bool    `json:"a" msgpack:"a"`
	Boost bool    `json:"b,omitempty" msgpack:"b,omitempty"`
}

// EnemyState is broadcast per enemy
type EnemyState struct {
	ID    string  `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	HP    int     `json:"hp" msgpack:"hp"`
	MaxHP int     `json:"mhp" msgpack:"mhp"`
	Alive bool    `json:"a" msgpack:"a"`
}

// ProjectileState is broadcast per projectile
type ProjectileState struct {
	ID    string  `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	Owner string  `json:"o" msgpack:"o"`
}

// PickupState is broadcast per pickup
type PickupState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// GameState is the full state broadcast (msgpack-encoded binary frame)
type GameState struct {
	Players     []PlayerState     `json:"p" msgpack:"p"`
	Enemies     []EnemyState      `json:"e" msgpack:"e"`
	Projectiles []ProjectileState `json:"pr" msgpack:"pr"`
	Pickups     []PickupState     `json:"pk" msgpack:"pk"`
	Wave        int               `json:"w" msgpack:"w"`
	Tick        uint64            `json:"tick" msgpack:"tick"`
}

// ObstacleState describes one static box, sent once in the welcome message
type ObstacleState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ID        string          `json:"id"`
	WorldW    float64         `json:"ww"`
	WorldH    float64         `json:"wh"`
	Obstacles []ObstacleState `json:"ob"`
}

// DeathMsg notifies a player their run ended
type DeathMsg struct {
	Wave  int `json:"wave"`
	Kills int `json:"kills"`
	Score int `json:"score"`
}

// WaveMsg announces a new wave to the session
type WaveMsg struct {
	Wave    int `json:"wave"`
	Enemies int `json:"enemies"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Players int    `json:"players"`
	Wave    int    `json:"wave"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// CheckMsg is sent by the client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Players int    `json:"players,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg re-authenticates with a stored token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg carries account stats
type ProfileDataMsg struct {
	Username string  `json:"username"`
	BestWave int     `json:"best_wave"`
	Kills    int     `json:"kills"`
	Runs     int     `json:"runs"`
	Playtime float64 `json:"playtime"`
}

// LeaderboardMsg requests the leaderboard
type LeaderboardMsg struct {
	Limit int `json:"limit"`
}

// LeaderboardEntry is one row in the leaderboard response
type LeaderboardEntry struct {
	Username  string `json:"username"`
	BestWave  int    `json:"best_wave"`
	BestScore int    `json:"best_score"`
	Kills     int    `json:"kills"`
}
