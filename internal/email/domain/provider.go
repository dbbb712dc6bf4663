package domain

import "time"

// ParsedEmail is the decoded form of one raw message. Transient; only the
// fields below survive into the store.
type ParsedEmail struct {
	MessageID   string
	Subject     string
	From        string
	To          string
	Date        time.Time
	HTMLBody    string
	TextBody    string
	Attachments []ParsedAttachment
}

// ParsedAttachment carries attachment metadata. Empty fields are defaulted
// at persistence time, not here.
type ParsedAttachment struct {
	Filename    string
	ContentType string
	Size        int64
	ContentID   string
	Inline      bool
}

// MailProvider opens authenticated mailbox sessions. The password is passed
// separately because credential records store it encrypted.
type MailProvider interface {
	Open(cred *EmailCredential, password string) (MailSession, error)
}

// MailSession is one authenticated connection to one user's mailbox,
// owned by a single sync pass. Close is safe to call more than once and
// must be called on every exit path.
type MailSession interface {
	// SelectMailbox acquires the named mailbox and returns its release
	// function, which the caller defers.
	SelectMailbox(name string) (release func(), err error)
	// ListSince returns candidate UIDs with a server-side date filter,
	// oldest first. UIDs are only valid within this session.
	ListSince(since time.Time) ([]uint32, error)
	// FetchRaw downloads one full raw message.
	FetchRaw(uid uint32) ([]byte, error)
	// Parse decodes raw message bytes.
	Parse(raw []byte) (*ParsedEmail, error)
	Close() error
}
