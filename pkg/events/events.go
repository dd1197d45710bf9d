package events

// Type identifies the kind of change an Event describes.
type Type string

const (
	TypeMessageAppended  Type = "message.appended"
	TypeContactAdded     Type = "contact.added"
	TypeTypingChanged    Type = "typing.changed"
	TypeOptionsChanged   Type = "options.changed"
	TypeFlagSet          Type = "flag.set"
	TypeEvidenceRecorded Type = "evidence.recorded"
	TypeEmailInserted    Type = "email.inserted"
	TypeNotification     Type = "notification"
	TypeInstallProgress  Type = "install.progress"
	TypeScareTriggered   Type = "scare.triggered"

	TypeCaveSceneChanged Type = "cave.scene_changed"
	TypeCaveCharTyped    Type = "cave.char_typed"
	TypeCaveLineDone     Type = "cave.line_done"
	TypeCaveChoicesShown Type = "cave.choices_shown"
	TypeCaveFadeTick     Type = "cave.fade_tick"
	TypeCaveResolved     Type = "cave.resolved"

	// TypeCue is a fire-and-forget audio/haptic cue for the host platform.
	TypeCue Type = "cue"
)

// Audio/haptic cue names emitted with TypeCue events. The engine never waits
// for cue playback.
const (
	CueTyping         = "typing"
	CueReceived       = "received"
	CueVibrate        = "vibrate"
	CueJumpscare      = "jumpscare"
	CueCaveTyping     = "cave_typing"
	CueCaveTypingHard = "cave_typing_hard"
	CueFlatline       = "flatline"
)

// Event is a discrete engine change notification. ContactID, Flag and the
// other fields are populated per Type; unused fields stay zero.
type Event struct {
	Type      Type
	ContactID string
	Flag      string
	Text      string  // notification text, cue name, cave char/line content
	Scene     string  // cave scene id
	Progress  float64 // install progress or fade progress, 0..1
	Severity  string  // cave resolution severity
}
