package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/globalantic/globot/domain"
	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned for an unknown or closed session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrAwaitingResponse is returned when a submission arrives while a
	// reply is still in flight. At most one turn per session at a time.
	ErrAwaitingResponse = errors.New("a reply is already in flight")
)

// Manager owns the conversation sessions and their turn-taking state
// machine. Messages are appended in strict submit-then-reply order; the
// user message lands synchronously on submit, the assistant reply lands
// when the scheduled turn fires.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	responder *Responder
	scheduler *Scheduler
	emitter   Emitter
	now       func() time.Time
}

type session struct {
	data   *domain.Session
	seq    int64
	closed bool
}

// NewManager wires the session manager. emitter may be nil when no surface
// is attached (tests, headless runs).
func NewManager(responder *Responder, scheduler *Scheduler, emitter Emitter) *Manager {
	return &Manager{
		sessions:  make(map[string]*session),
		responder: responder,
		scheduler: scheduler,
		emitter:   emitter,
		now:       time.Now,
	}
}

// SubmitResult is the synchronous outcome of an accepted submission. The
// reply itself arrives later; Turn can be awaited for it.
type SubmitResult struct {
	UserMessage domain.Message
	Turn        *Task
}

// OpenSession returns the session with the given ID, creating it with the
// synthesized greeting when it does not exist yet. Reopening an existing
// session never duplicates the greeting. An empty ID asks for a generated
// one.
func (m *Manager) OpenSession(sessionID string) *domain.Session {
	m.mu.Lock()

	if sessionID == "" {
		sessionID = "sess_" + uuid.New().String()[:8]
	}
	s, ok := m.sessions[sessionID]
	if ok {
		snapshot := snapshotSession(s.data)
		m.mu.Unlock()
		return snapshot
	}

	s = &session{
		data: &domain.Session{
			SessionID: sessionID,
			CreatedAt: m.now(),
			State:     domain.TurnIdle,
			Context:   domain.NewUserContext(m.now()),
		},
	}
	m.sessions[sessionID] = s

	welcome := m.appendLocked(s, m.responder.Welcome())
	snapshot := snapshotSession(s.data)
	m.mu.Unlock()

	m.emit(sessionID, welcome)
	return snapshot
}

// Submit runs the idle -> awaitingResponse transition for one user turn.
// Empty or whitespace-only text is a no-op and returns (nil, nil). A
// submission while a reply is in flight returns ErrAwaitingResponse and
// appends nothing.
func (m *Manager) Submit(sessionID, text string) (*SubmitResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.data.State == domain.TurnAwaitingResponse {
		m.mu.Unlock()
		return nil, ErrAwaitingResponse
	}

	now := m.now()
	userMsg := m.appendLocked(s, domain.Message{
		Sender:    domain.SenderUser,
		Text:      text,
		Kind:      domain.KindPlain,
		CreatedAt: now,
	})

	s.data.Context = TrackQuery(s.data.Context, text, now)
	s.data.State = domain.TurnAwaitingResponse
	uc := s.data.Context
	m.mu.Unlock()

	m.emit(sessionID, userMsg)

	cls := Classify(Tokenize(text))
	task := m.scheduler.Schedule(func() {
		m.completeTurn(sessionID, cls, text, uc)
	})

	return &SubmitResult{UserMessage: userMsg, Turn: task}, nil
}

// SelectSuggestion submits a suggestion chip as if the user had typed it.
func (m *Manager) SelectSuggestion(sessionID, text string) (*SubmitResult, error) {
	return m.Submit(sessionID, text)
}

// Messages returns a copy of the session's message log.
func (m *Manager) Messages(sessionID string) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make([]domain.Message, len(s.data.Messages))
	copy(out, s.data.Messages)
	return out, nil
}

// Session returns a snapshot of the session.
func (m *Manager) Session(sessionID string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshotSession(s.data), nil
}

// CloseSession discards a session. A turn still in flight fires into the
// void: the continuation sees the closed flag and appends nothing.
func (m *Manager) CloseSession(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.closed = true
	delete(m.sessions, sessionID)
	return nil
}

// completeTurn is the awaitingResponse -> idle transition, run by the
// scheduler. It always produces exactly one message: the generated reply,
// or the apology when generation failed.
func (m *Manager) completeTurn(sessionID string, cls Classification, rawText string, uc domain.UserContext) {
	reply, err := m.generate(cls, rawText, uc)
	if err != nil {
		log.Printf("ERROR: reply generation failed for session %s: %v", sessionID, err)
		reply = m.responder.Apology()
	}

	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok || s.closed {
		// The chat surface went away while we were thinking.
		m.mu.Unlock()
		return
	}
	reply = m.appendLocked(s, reply)
	s.data.State = domain.TurnIdle
	m.mu.Unlock()

	m.emit(sessionID, reply)
}

// generate shields the turn path from anything the responder does,
// converting panics into errors at the turn boundary.
func (m *Manager) generate(cls Classification, rawText string, uc domain.UserContext) (msg domain.Message, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("response generation panicked: %v", r)
		}
	}()
	return m.responder.Generate(context.Background(), cls, rawText, uc)
}

// appendLocked stamps identity onto a message and appends it. Seq is
// strictly increasing per session. Caller holds m.mu.
func (m *Manager) appendLocked(s *session, msg domain.Message) domain.Message {
	s.seq++
	msg.MessageID = "msg_" + uuid.New().String()[:8]
	msg.SessionID = s.data.SessionID
	msg.Seq = s.seq
	s.data.Messages = append(s.data.Messages, msg)
	return msg
}

func (m *Manager) emit(sessionID string, msg domain.Message) {
	if m.emitter != nil {
		m.emitter.Emit(sessionID, msg)
	}
}

func snapshotSession(data *domain.Session) *domain.Session {
	snapshot := *data
	snapshot.Messages = make([]domain.Message, len(data.Messages))
	copy(snapshot.Messages, data.Messages)
	return &snapshot
}
