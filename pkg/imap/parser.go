package imap

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	// Registers decoders for non-UTF-8 charsets in message headers.
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"mailsync-backend/internal/email/domain"
)

// ParseMessage decodes one raw RFC 5322 message. The first text/plain and
// text/html parts become the bodies; attachment parts and non-text inline
// parts (cid images) become attachment metadata. Malformed input is an
// error for the caller to isolate.
func ParseMessage(raw []byte) (*domain.ParsedEmail, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing message: %w", err)
	}
	defer mr.Close()

	parsed := &domain.ParsedEmail{}

	header := mr.Header
	if id, err := header.MessageID(); err == nil {
		parsed.MessageID = id
	}
	if subject, err := header.Subject(); err == nil {
		parsed.Subject = subject
	}
	if date, err := header.Date(); err == nil {
		parsed.Date = date
	}
	if from, err := header.AddressList("From"); err == nil {
		parsed.From = formatAddressList(from)
	}
	if to, err := header.AddressList("To"); err == nil {
		parsed.To = formatAddressList(to)
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// keep what decoded so far
			break
		}

		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			switch {
			case strings.HasPrefix(contentType, "text/plain"):
				body, err := io.ReadAll(part.Body)
				if err == nil && parsed.TextBody == "" {
					parsed.TextBody = string(body)
				}
			case strings.HasPrefix(contentType, "text/html"):
				body, err := io.ReadAll(part.Body)
				if err == nil && parsed.HTMLBody == "" {
					parsed.HTMLBody = string(body)
				}
			default:
				// Inline non-text part, typically an embedded image.
				body, err := io.ReadAll(part.Body)
				if err != nil {
					continue
				}
				disp, dispParams, _ := h.ContentDisposition()
				_, typeParams, _ := h.ContentType()
				parsed.Attachments = append(parsed.Attachments, domain.ParsedAttachment{
					Filename:    inlineFilename(dispParams, typeParams),
					ContentType: contentType,
					Size:        int64(len(body)),
					ContentID:   contentID(h.Get("Content-Id")),
					Inline:      disp == "inline",
				})
			}

		case *mail.AttachmentHeader:
			body, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()
			disp, _, _ := h.ContentDisposition()
			parsed.Attachments = append(parsed.Attachments, domain.ParsedAttachment{
				Filename:    filename,
				ContentType: contentType,
				Size:        int64(len(body)),
				ContentID:   contentID(h.Get("Content-Id")),
				Inline:      disp == "inline",
			})
		}
	}

	return parsed, nil
}

// formatAddressList renders addresses as display text, e.g.
// "Alice Example <alice@example.com>, bob@example.com".
func formatAddressList(addrs []*mail.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name != "" {
			parts = append(parts, fmt.Sprintf("%s <%s>", a.Name, a.Address))
		} else {
			parts = append(parts, a.Address)
		}
	}
	return strings.Join(parts, ", ")
}

func contentID(v string) string {
	return strings.Trim(strings.TrimSpace(v), "<>")
}

func inlineFilename(dispParams, typeParams map[string]string) string {
	if name := dispParams["filename"]; name != "" {
		return name
	}
	return typeParams["name"]
}
