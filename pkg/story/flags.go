package story

// Story progress flags. Every flag is monotonic: once set it stays set for
// the rest of the playthrough. The only cross-session flag is
// FlagSystemRebooted, mirrored to external storage at game end.
const (
	FlagBankHacked       = "bank_hacked"
	FlagSecretPhoto      = "secret_photo_revealed"
	FlagSiteCamInstalled = "sitecam_installed"
	FlagTrackerUnlocked  = "tracker_recording_unlocked"
	FlagTrackerFinished  = "tracker_sequence_finished"
	FlagGhostEmailRead   = "ghost_email_read"
	FlagGameFinished     = "game_finished"
	FlagSystemRebooted   = "system_rebooted"
)

// One-shot trigger guards. Setting the guard is what makes a trigger fire at
// most once.
const (
	GuardBankReaction = "fired_bank_reaction"
	GuardUnknownHint  = "fired_unknown_hint"
	GuardPhotoThreat  = "fired_photo_threat"
	GuardGhostEmail   = "fired_ghost_email"
	GuardEndgame      = "fired_endgame"
)
