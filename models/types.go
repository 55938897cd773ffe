package models

import "time"

// PollSpec is the parser's output: a validated question plus at least two
// option labels in the order they were typed.
type PollSpec struct {
	Question string
	Options  []string
}

// Option is one votable choice. ID is assigned densely at creation and never
// reused, so button values stay stable even if rendering order changes later.
type Option struct {
	ID     int      `json:"option_id"`
	Label  string   `json:"label"`
	Voters []string `json:"voters"`
}

// Poll is the stored entity. Everything except the voter sets and MessageTS
// is immutable after creation.
type Poll struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	ChannelID string    `json:"channel_id"`
	Question  string    `json:"question"`
	Options   []Option  `json:"options"`
	MessageTS string    `json:"message_ts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Team holds the workspace access token obtained during the OAuth install.
type Team struct {
	ID          string    `json:"team_id"`
	AccessToken string    `json:"-"` // Never expose in JSON
	InstalledAt time.Time `json:"installed_at"`
}

// NewPoll combines a parsed spec with the requester and channel identity
// into a poll ready for storage. Option IDs are a dense sequence starting
// at 0 in spec order; voter sets start empty. The store assigns ID and
// CreatedAt when the poll is persisted.
func NewPoll(ownerID, channelID string, spec PollSpec) Poll {
	options := make([]Option, len(spec.Options))
	for i, label := range spec.Options {
		options[i] = Option{ID: i, Label: label, Voters: []string{}}
	}
	return Poll{
		OwnerID:   ownerID,
		ChannelID: channelID,
		Question:  spec.Question,
		Options:   options,
	}
}

// OptionByID returns the option with the given ID, or false when the poll
// has no such option.
func (p Poll) OptionByID(id int) (Option, bool) {
	for _, opt := range p.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// VotedOption returns the ID of the option holding voterID's vote, or -1
// when the voter has not voted on this poll.
func (p Poll) VotedOption(voterID string) int {
	for _, opt := range p.Options {
		for _, v := range opt.Voters {
			if v == voterID {
				return opt.ID
			}
		}
	}
	return -1
}
