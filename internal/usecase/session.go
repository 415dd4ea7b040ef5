package usecase

import (
	"encoding/json"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/logger"
)

// TokenSink receives the session token so outbound requests carry it.
type TokenSink interface {
	SetToken(token string)
}

// Sessions persists the signed-in user in the mirror store. There is no
// client-side expiry check; the backend rejects a stale token and the
// views route that to sign-in.
type Sessions struct {
	store domain.MirrorStore
	sink  TokenSink
}

func NewSessions(store domain.MirrorStore, sink TokenSink) *Sessions {
	s := &Sessions{store: store, sink: sink}
	// Rehydrate the transport token from a persisted session
	if sess := s.Current(); sess.SignedIn() && sink != nil {
		sink.SetToken(sess.Token)
	}
	return s
}

// Current returns the persisted session. A missing or unreadable record
// reads as signed-out.
func (s *Sessions) Current() *domain.Session {
	payload, _, ok := s.store.Read(domain.KeySession)
	if !ok {
		return &domain.Session{}
	}
	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		logger.Log.Warn("session record unparseable, treating as signed out", "error", err)
		return &domain.Session{}
	}
	return &sess
}

func (s *Sessions) save(sess *domain.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.store.Write(domain.KeySession, payload); err != nil {
		return err
	}
	if s.sink != nil {
		s.sink.SetToken(sess.Token)
	}
	return nil
}

func (s *Sessions) clear() error {
	if s.sink != nil {
		s.sink.SetToken("")
	}
	return s.store.Clear(domain.KeySession)
}
