package imap

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"mailsync-backend/internal/email/domain"
	"mailsync-backend/pkg/config"
)

// Service dials authenticated IMAP sessions. Connection parameters come
// from the credential record when set, otherwise from the service-wide
// defaults in the config.
type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Open establishes one authenticated connection for the given credential.
// The caller owns the returned session and must Close it.
func (s *Service) Open(cred *domain.EmailCredential, password string) (domain.MailSession, error) {
	host := cred.IMAPHost
	if host == "" {
		host = s.cfg.IMAPHost
	}
	port := cred.IMAPPort
	if port == 0 {
		port = s.cfg.IMAPPort
	}
	secure := s.cfg.IMAPSecure
	if cred.IMAPTLS != nil {
		secure = *cred.IMAPTLS
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	var c *client.Client
	var err error
	if secure {
		c, err = client.DialTLS(addr, nil)
	} else {
		c, err = client.Dial(addr)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}

	if err := c.Login(cred.IMAPUsername, password); err != nil {
		_ = c.Logout()
		return nil, fmt.Errorf("authenticating %s: %w", cred.IMAPUsername, err)
	}

	return &session{client: c}, nil
}

// session implements domain.MailSession on top of one go-imap client.
type session struct {
	client *client.Client
	logout sync.Once
}

func (s *session) SelectMailbox(name string) (func(), error) {
	if _, err := s.client.Select(name, false); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", name, err)
	}
	// CLOSE releases the selected mailbox without expunging.
	return func() { _ = s.client.Close() }, nil
}

func (s *session) ListSince(since time.Time) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Since = since
	uids, err := s.client.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("searching messages: %w", err)
	}
	return uids, nil
}

func (s *session) FetchRaw(uid uint32) ([]byte, error) {
	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.client.UidFetch(seqset, items, messages)
	}()

	var raw []byte
	for msg := range messages {
		body := msg.GetBody(section)
		if body == nil {
			continue
		}
		b, err := io.ReadAll(body)
		if err != nil {
			<-done
			return nil, fmt.Errorf("reading message %d: %w", uid, err)
		}
		raw = b
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetching message %d: %w", uid, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("message %d: no body returned", uid)
	}
	return raw, nil
}

func (s *session) Parse(raw []byte) (*domain.ParsedEmail, error) {
	return ParseMessage(raw)
}

func (s *session) Close() error {
	var err error
	s.logout.Do(func() {
		err = s.client.Logout()
	})
	return err
}
